package usecase

import (
	"fmt"
	"log"
	"sync"
	"time"

	"tradejournal-backend/internal/domain"
	"tradejournal-backend/internal/infrastructure/fcm"
	"tradejournal-backend/internal/repository"
)

// NotificationUsecase pushes an FCM message to registered devices when a
// journal entry is closed. Send failures are logged and never surface to
// the request that closed the trade.
type NotificationUsecase struct {
	fcmClient *fcm.Client
	tokenRepo *repository.TokenRepository
	notified  map[string]time.Time // trade id -> last notified
	mu        sync.Mutex
}

func NewNotificationUsecase(fcmClient *fcm.Client, tokenRepo *repository.TokenRepository) *NotificationUsecase {
	return &NotificationUsecase{
		fcmClient: fcmClient,
		tokenRepo: tokenRepo,
		notified:  make(map[string]time.Time),
	}
}

// NotifyTradeClosed sends a win/loss summary for a freshly closed trade.
func (uc *NotificationUsecase) NotifyTradeClosed(trade *domain.Trade) {
	if uc == nil || uc.fcmClient == nil || !uc.fcmClient.IsEnabled() {
		return
	}
	if !trade.Closed() || trade.Trade.WinLoss == nil || trade.Trade.PnlUSD == nil {
		return
	}

	tokens := uc.tokenRepo.GetAllTokens()
	if len(tokens) == 0 {
		return
	}

	now := time.Now()
	cooldown := 5 * time.Minute

	uc.mu.Lock()
	last, seen := uc.notified[trade.ID]
	if seen && now.Sub(last) < cooldown {
		uc.mu.Unlock()
		return
	}
	uc.mu.Unlock()

	var title string
	if *trade.Trade.WinLoss == domain.ResultWin {
		title = fmt.Sprintf("%s closed — WIN", trade.Trade.Symbol)
	} else {
		title = fmt.Sprintf("%s closed — LOSS", trade.Trade.Symbol)
	}

	body := fmt.Sprintf("P&L: $%.2f", *trade.Trade.PnlUSD)
	if trade.Trade.PnlPercent != nil {
		body = fmt.Sprintf("P&L: $%.2f (%.2f%%)", *trade.Trade.PnlUSD, *trade.Trade.PnlPercent)
	}

	data := map[string]string{
		"trade_id": trade.ID,
		"symbol":   trade.Trade.Symbol,
		"win_loss": *trade.Trade.WinLoss,
		"pnl_usd":  fmt.Sprintf("%.2f", *trade.Trade.PnlUSD),
	}

	if err := uc.fcmClient.SendMulticast(tokens, title, body, data); err != nil {
		log.Printf("Error sending close notification for %s: %v", trade.ID, err)
		return
	}
	log.Printf("Sent close notification for %s to %d devices", trade.Trade.Symbol, len(tokens))

	uc.mu.Lock()
	uc.notified[trade.ID] = now
	for id, ts := range uc.notified {
		if now.Sub(ts) > cooldown*2 {
			delete(uc.notified, id)
		}
	}
	uc.mu.Unlock()
}

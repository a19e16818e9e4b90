package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"tradejournal-backend/internal/domain"
)

// PortfolioUsecase owns the buy-order store and the live-price map. Orders
// live in the repository; prices are a last-write-wins map fed by user input
// and the background price feed.
type PortfolioUsecase struct {
	repo   domain.PortfolioRepository
	mu     sync.RWMutex
	prices map[string]float64 // symbol -> live price in USD
}

func NewPortfolioUsecase(repo domain.PortfolioRepository) *PortfolioUsecase {
	return &PortfolioUsecase{
		repo:   repo,
		prices: make(map[string]float64),
	}
}

// AddOrder appends a buy order to its symbol's list, creating the list if
// absent. A missing id or date is defaulted. currentPrice, when non-nil,
// also records a live price for the symbol.
func (uc *PortfolioUsecase) AddOrder(symbol string, order domain.BuyOrder, currentPrice *float64) (domain.BuyOrder, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return domain.BuyOrder{}, errors.New("symbol is required")
	}
	if order.Shares <= 0 {
		return domain.BuyOrder{}, errors.New("shares must be positive")
	}
	if order.Price <= 0 {
		return domain.BuyOrder{}, errors.New("price must be positive")
	}

	if order.ID == "" {
		order.ID = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	if order.Date == "" {
		order.Date = time.Now().Format(dateLayout)
	}

	uc.repo.AddOrder(symbol, order)

	if currentPrice != nil && *currentPrice > 0 {
		uc.SetPrice(symbol, *currentPrice)
	}
	return order, nil
}

// RemoveOrder deletes one order by id from its symbol's list. The symbol key
// survives even when the list empties; its aggregates read zero from then on.
func (uc *PortfolioUsecase) RemoveOrder(symbol, orderID string) error {
	return uc.repo.RemoveOrder(strings.ToUpper(strings.TrimSpace(symbol)), orderID)
}

// Orders returns the buy-order history for one symbol.
func (uc *PortfolioUsecase) Orders(symbol string) []domain.BuyOrder {
	return uc.repo.GetOrders(strings.ToUpper(strings.TrimSpace(symbol)))
}

// SetPrice records a live price for a symbol, replacing any previous one.
func (uc *PortfolioUsecase) SetPrice(symbol string, price float64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.prices[strings.ToUpper(symbol)] = price
}

func (uc *PortfolioUsecase) livePrice(symbol string) (float64, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	p, ok := uc.prices[symbol]
	return p, ok
}

// Summaries aggregates every symbol's orders into average cost, value and
// P&L. Without a live price a symbol values at its average cost, so its
// unrealized P&L reads zero until the feed supplies one; that fallback is
// the intended product behavior, not a gap.
func (uc *PortfolioUsecase) Summaries() []domain.PositionSummary {
	positions := uc.repo.GetAllOrders()

	summaries := make([]domain.PositionSummary, 0, len(positions))
	var portfolioValue float64

	for symbol, orders := range positions {
		s := domain.PositionSummary{Symbol: symbol}
		for _, o := range orders {
			s.TotalShares += o.Shares
			s.TotalCost += o.Shares * o.Price
		}
		if s.TotalShares > 0 {
			s.AverageCost = s.TotalCost / s.TotalShares
		}

		if live, ok := uc.livePrice(symbol); ok {
			s.CurrentPrice = live
			s.LivePrice = true
		} else {
			s.CurrentPrice = s.AverageCost
		}

		s.TotalValue = s.TotalShares * s.CurrentPrice
		s.Pnl = s.TotalValue - s.TotalCost
		if s.TotalCost != 0 {
			s.PnlPercent = s.Pnl / s.TotalCost * 100
		}

		portfolioValue += s.TotalValue
		summaries = append(summaries, s)
	}

	for i := range summaries {
		if portfolioValue != 0 {
			summaries[i].PortfolioShare = summaries[i].TotalValue / portfolioValue * 100
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Symbol < summaries[j].Symbol
	})
	return summaries
}

// TotalValue returns the portfolio's combined market value.
func (uc *PortfolioUsecase) TotalValue() float64 {
	var total float64
	for _, s := range uc.Summaries() {
		total += s.TotalValue
	}
	return total
}

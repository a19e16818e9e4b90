package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tradejournal-backend/internal/domain"
	"tradejournal-backend/internal/usecase"
)

// TradeHandler handles journal entry endpoints.
type TradeHandler struct {
	repo     domain.TradeRepository
	notifier *usecase.NotificationUsecase
}

// NewTradeHandler creates a new trade handler. notifier may be nil when
// push alerts are not configured.
func NewTradeHandler(repo domain.TradeRepository, notifier *usecase.NotificationUsecase) *TradeHandler {
	return &TradeHandler{repo: repo, notifier: notifier}
}

// Create handles POST /api/trades
func (h *TradeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var trade domain.Trade
	if err := json.NewDecoder(r.Body).Decode(&trade); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if trade.Trade.Symbol == "" {
		http.Error(w, "Symbol is required", http.StatusBadRequest)
		return
	}
	if trade.Trade.Side != domain.SideLong && trade.Trade.Side != domain.SideShort {
		http.Error(w, "Side must be LONG or SHORT", http.StatusBadRequest)
		return
	}

	// Set default values
	if trade.ID == "" {
		trade.ID = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	if trade.Trade.EntryDate == "" {
		trade.Trade.EntryDate = time.Now().Format("2006-01-02")
	}

	// Derived fields are never trusted from the client.
	usecase.Recalculate(&trade)

	if err := h.repo.Create(&trade); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if trade.Closed() {
		h.notifier.NotifyTradeClosed(&trade)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trade)
}

// List handles GET /api/trades (optionally filtered by ?user_id=)
func (h *TradeHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var trades []*domain.Trade
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		trades = h.repo.GetByUser(userID)
	} else {
		trades = h.repo.GetAll()
	}
	if trades == nil {
		trades = make([]*domain.Trade, 0)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trades)
}

// Get handles GET /api/trades/get?id={id}
func (h *TradeHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	trade, err := h.repo.GetByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trade)
}

// Update handles PUT /api/trades/update?id={id}. The body carries the full
// entry; sub-records are replaced wholesale and derived fields recomputed.
func (h *TradeHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.GetByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	wasClosed := existing.Closed()

	var trade domain.Trade
	if err := json.NewDecoder(r.Body).Decode(&trade); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	trade.ID = id
	if trade.UserID == "" {
		trade.UserID = existing.UserID
	}

	usecase.Recalculate(&trade)

	if err := h.repo.Update(&trade); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !wasClosed && trade.Closed() {
		h.notifier.NotifyTradeClosed(&trade)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trade)
}

// Delete handles DELETE /api/trades/delete?id={id}
func (h *TradeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"deleted"}`))
}

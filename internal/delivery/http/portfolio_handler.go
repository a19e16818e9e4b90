package http

import (
	"encoding/json"
	"net/http"

	"tradejournal-backend/internal/domain"
	"tradejournal-backend/internal/usecase"
)

// PortfolioHandler handles buy-order and allocation endpoints.
type PortfolioHandler struct {
	portfolio *usecase.PortfolioUsecase
}

func NewPortfolioHandler(portfolio *usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

type addOrderRequest struct {
	Symbol       string   `json:"symbol"`
	Shares       float64  `json:"shares"`
	Price        float64  `json:"price"`
	Date         string   `json:"date"`
	CurrentPrice *float64 `json:"current_price"`
}

// AddOrder handles POST /api/portfolio/orders
func (h *PortfolioHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req addOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.portfolio.AddOrder(req.Symbol, domain.BuyOrder{
		Shares: req.Shares,
		Price:  req.Price,
		Date:   req.Date,
	}, req.CurrentPrice)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// RemoveOrder handles DELETE /api/portfolio/orders/delete?symbol={symbol}&id={id}
func (h *PortfolioHandler) RemoveOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	symbol := r.URL.Query().Get("symbol")
	id := r.URL.Query().Get("id")
	if symbol == "" || id == "" {
		http.Error(w, "Missing symbol or id parameter", http.StatusBadRequest)
		return
	}

	if err := h.portfolio.RemoveOrder(symbol, id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"deleted"}`))
}

// Orders handles GET /api/portfolio/orders?symbol={symbol}
func (h *PortfolioHandler) Orders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		http.Error(w, "Missing symbol parameter", http.StatusBadRequest)
		return
	}

	orders := h.portfolio.Orders(symbol)
	if orders == nil {
		orders = make([]domain.BuyOrder, 0)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// Summary handles GET /api/portfolio
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries := h.portfolio.Summaries()
	var total float64
	for _, s := range summaries {
		total += s.TotalValue
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"positions":  summaries,
		"totalValue": total,
	})
}

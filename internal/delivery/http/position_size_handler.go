package http

import (
	"encoding/json"
	"net/http"

	"tradejournal-backend/internal/usecase"
)

// PositionSizeHandler handles the position-size calculator endpoints.
// The calculator is stateless; every request is computed from scratch.
type PositionSizeHandler struct{}

func NewPositionSizeHandler() *PositionSizeHandler {
	return &PositionSizeHandler{}
}

type positionSizeResponse struct {
	Result *usecase.PositionSizeResult `json:"result"`
}

// Calculate handles POST /api/position-size. Non-positive inputs produce
// a null result, not an error status.
func (h *PositionSizeHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in usecase.PositionSizeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(positionSizeResponse{
		Result: usecase.CalculatePositionSize(in),
	})
}

// Defaults handles GET /api/position-size/defaults, serving the reset values.
func (h *PositionSizeHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usecase.DefaultPositionSizeInput())
}

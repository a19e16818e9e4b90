package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"tradejournal-backend/internal/domain"
	"tradejournal-backend/internal/usecase"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// Handler streams portfolio snapshots to connected clients so the
// allocation view updates as live prices arrive.
type Handler struct {
	portfolio *usecase.PortfolioUsecase
	interval  time.Duration
}

func NewHandler(portfolio *usecase.PortfolioUsecase) *Handler {
	return &Handler{
		portfolio: portfolio,
		interval:  5 * time.Second,
	}
}

type snapshot struct {
	Positions  []domain.PositionSummary `json:"positions"`
	TotalValue float64                  `json:"totalValue"`
}

func (h *Handler) takeSnapshot() snapshot {
	summaries := h.portfolio.Summaries()
	var total float64
	for _, s := range summaries {
		total += s.TotalValue
	}
	return snapshot{Positions: summaries, TotalValue: total}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()

	log.Println("New portfolio stream client connected")

	// Send initial snapshot immediately
	if err := conn.WriteJSON(h.takeSnapshot()); err != nil {
		log.Println("Write error:", err)
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteJSON(h.takeSnapshot()); err != nil {
			log.Println("Write error:", err)
			return
		}
	}
}

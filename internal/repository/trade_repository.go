package repository

import (
	"fmt"
	"sync"

	"tradejournal-backend/internal/domain"
)

// InMemoryTradeRepository stores journal entries in memory. Used when no
// DATABASE_URL is configured and as the fixture for handler tests.
type InMemoryTradeRepository struct {
	mu     sync.RWMutex
	trades map[string]*domain.Trade
	order  []string // insertion order of ids, newest listed first
}

func NewInMemoryTradeRepository() *InMemoryTradeRepository {
	return &InMemoryTradeRepository{
		trades: make(map[string]*domain.Trade),
	}
}

func (r *InMemoryTradeRepository) Create(trade *domain.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trades[trade.ID]; exists {
		return fmt.Errorf("trade with ID %s already exists", trade.ID)
	}

	r.trades[trade.ID] = trade
	r.order = append(r.order, trade.ID)
	return nil
}

func (r *InMemoryTradeRepository) GetByID(id string) (*domain.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trade, exists := r.trades[id]
	if !exists {
		return nil, fmt.Errorf("trade not found")
	}
	return trade, nil
}

func (r *InMemoryTradeRepository) GetAll() []*domain.Trade {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Trade, 0, len(r.trades))
	for i := len(r.order) - 1; i >= 0; i-- {
		if t, ok := r.trades[r.order[i]]; ok {
			result = append(result, t)
		}
	}
	return result
}

func (r *InMemoryTradeRepository) GetByUser(userID string) []*domain.Trade {
	all := r.GetAll()
	result := make([]*domain.Trade, 0, len(all))
	for _, t := range all {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result
}

func (r *InMemoryTradeRepository) Update(trade *domain.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trades[trade.ID]; !exists {
		return fmt.Errorf("trade not found")
	}
	r.trades[trade.ID] = trade
	return nil
}

func (r *InMemoryTradeRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trades[id]; !exists {
		return fmt.Errorf("trade not found")
	}
	delete(r.trades, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

var _ domain.TradeRepository = (*InMemoryTradeRepository)(nil)

package repository

import (
	"fmt"
	"sync"

	"tradejournal-backend/internal/domain"
)

// InMemoryPortfolioRepository stores buy orders grouped by symbol. This is
// the owned state object behind the portfolio aggregator; it deliberately
// keeps a symbol's key after its last order is removed, so the symbol's
// aggregates read zero rather than disappearing.
type InMemoryPortfolioRepository struct {
	mu        sync.RWMutex
	positions map[string][]domain.BuyOrder
}

func NewInMemoryPortfolioRepository() *InMemoryPortfolioRepository {
	return &InMemoryPortfolioRepository{
		positions: make(map[string][]domain.BuyOrder),
	}
}

func (r *InMemoryPortfolioRepository) AddOrder(symbol string, order domain.BuyOrder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions[symbol] = append(r.positions[symbol], order)
}

func (r *InMemoryPortfolioRepository) RemoveOrder(symbol, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, exists := r.positions[symbol]
	if !exists {
		return fmt.Errorf("no orders for symbol %s", symbol)
	}

	for i, o := range orders {
		if o.ID == orderID {
			r.positions[symbol] = append(orders[:i], orders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("order not found")
}

func (r *InMemoryPortfolioRepository) GetOrders(symbol string) []domain.BuyOrder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := r.positions[symbol]
	result := make([]domain.BuyOrder, len(orders))
	copy(result, orders)
	return result
}

func (r *InMemoryPortfolioRepository) GetAllOrders() map[string][]domain.BuyOrder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]domain.BuyOrder, len(r.positions))
	for symbol, orders := range r.positions {
		list := make([]domain.BuyOrder, len(orders))
		copy(list, orders)
		result[symbol] = list
	}
	return result
}

var _ domain.PortfolioRepository = (*InMemoryPortfolioRepository)(nil)

package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal-backend/internal/domain"
	"tradejournal-backend/internal/repository"
)

func newPortfolio(t *testing.T) *PortfolioUsecase {
	t.Helper()
	return NewPortfolioUsecase(repository.NewInMemoryPortfolioRepository())
}

func TestPortfolioAverageCostFallback(t *testing.T) {
	uc := newPortfolio(t)

	_, err := uc.AddOrder("SYM", domain.BuyOrder{ID: "1", Shares: 10, Price: 5, Date: "2024-01-01"}, nil)
	require.NoError(t, err)
	_, err = uc.AddOrder("SYM", domain.BuyOrder{ID: "2", Shares: 10, Price: 15, Date: "2024-01-02"}, nil)
	require.NoError(t, err)

	summaries := uc.Summaries()
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "SYM", s.Symbol)
	assert.Equal(t, 20.0, s.TotalShares)
	assert.Equal(t, 200.0, s.TotalCost)
	assert.Equal(t, 10.0, s.AverageCost)
	// No live price: current price falls back to average cost, P&L reads zero.
	assert.False(t, s.LivePrice)
	assert.Equal(t, 10.0, s.CurrentPrice)
	assert.Equal(t, 0.0, s.Pnl)
	assert.Equal(t, 0.0, s.PnlPercent)
}

func TestPortfolioWithLivePrice(t *testing.T) {
	uc := newPortfolio(t)

	_, err := uc.AddOrder("SYM", domain.BuyOrder{ID: "1", Shares: 10, Price: 5}, nil)
	require.NoError(t, err)
	_, err = uc.AddOrder("SYM", domain.BuyOrder{ID: "2", Shares: 10, Price: 15}, nil)
	require.NoError(t, err)

	uc.SetPrice("SYM", 12)

	summaries := uc.Summaries()
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.True(t, s.LivePrice)
	assert.Equal(t, 12.0, s.CurrentPrice)
	assert.Equal(t, 240.0, s.TotalValue)
	assert.Equal(t, 40.0, s.Pnl)
	assert.Equal(t, 20.0, s.PnlPercent)
	assert.Equal(t, 100.0, s.PortfolioShare)
}

func TestPortfolioShareAcrossSymbols(t *testing.T) {
	uc := newPortfolio(t)

	_, err := uc.AddOrder("AAA", domain.BuyOrder{ID: "1", Shares: 1, Price: 75}, nil)
	require.NoError(t, err)
	_, err = uc.AddOrder("BBB", domain.BuyOrder{ID: "2", Shares: 1, Price: 25}, nil)
	require.NoError(t, err)

	summaries := uc.Summaries()
	require.Len(t, summaries, 2)

	// Sorted by symbol
	assert.Equal(t, "AAA", summaries[0].Symbol)
	assert.Equal(t, 75.0, summaries[0].PortfolioShare)
	assert.Equal(t, "BBB", summaries[1].Symbol)
	assert.Equal(t, 25.0, summaries[1].PortfolioShare)
}

func TestPortfolioAddOrderValidation(t *testing.T) {
	uc := newPortfolio(t)

	_, err := uc.AddOrder("", domain.BuyOrder{Shares: 1, Price: 1}, nil)
	assert.Error(t, err)
	_, err = uc.AddOrder("SYM", domain.BuyOrder{Shares: 0, Price: 1}, nil)
	assert.Error(t, err)
	_, err = uc.AddOrder("SYM", domain.BuyOrder{Shares: 1, Price: -1}, nil)
	assert.Error(t, err)
}

func TestPortfolioAddOrderDefaultsAndLivePrice(t *testing.T) {
	uc := newPortfolio(t)

	price := 55.0
	order, err := uc.AddOrder("btc", domain.BuyOrder{Shares: 2, Price: 50}, &price)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.Date)

	summaries := uc.Summaries()
	require.Len(t, summaries, 1)
	// Symbol uppercased, supplied current price applied.
	assert.Equal(t, "BTC", summaries[0].Symbol)
	assert.True(t, summaries[0].LivePrice)
	assert.Equal(t, 55.0, summaries[0].CurrentPrice)
	assert.Equal(t, 10.0, summaries[0].Pnl)
}

func TestPortfolioRemoveLastOrderKeepsZeroedSymbol(t *testing.T) {
	uc := newPortfolio(t)

	_, err := uc.AddOrder("SYM", domain.BuyOrder{ID: "1", Shares: 10, Price: 5}, nil)
	require.NoError(t, err)
	require.NoError(t, uc.RemoveOrder("SYM", "1"))

	// The symbol stays with zeroed aggregates; nothing panics.
	summaries := uc.Summaries()
	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, 0.0, s.TotalShares)
	assert.Equal(t, 0.0, s.TotalCost)
	assert.Equal(t, 0.0, s.AverageCost)
	assert.Equal(t, 0.0, s.Pnl)
	assert.Equal(t, 0.0, s.PnlPercent)
}

func TestPortfolioRemoveOrderMissing(t *testing.T) {
	uc := newPortfolio(t)

	assert.Error(t, uc.RemoveOrder("SYM", "nope"))

	_, err := uc.AddOrder("SYM", domain.BuyOrder{ID: "1", Shares: 1, Price: 1}, nil)
	require.NoError(t, err)
	assert.Error(t, uc.RemoveOrder("SYM", "nope"))
}

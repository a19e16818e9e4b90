package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal-backend/internal/domain"
)

func sampleTrade(id, userID string) *domain.Trade {
	return &domain.Trade{
		ID:     id,
		UserID: userID,
		Trade: domain.TradeDetails{
			Symbol:     "BTCUSDT",
			Side:       domain.SideLong,
			EntryPrice: 50000,
			EntryDate:  "2024-01-01",
		},
	}
}

func TestInMemoryTradeRepositoryCRUD(t *testing.T) {
	repo := NewInMemoryTradeRepository()

	trade := sampleTrade("t1", "u1")
	require.NoError(t, repo.Create(trade))

	got, err := repo.GetByID("t1")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", got.Trade.Symbol)

	// Duplicate id rejected
	assert.Error(t, repo.Create(sampleTrade("t1", "u1")))

	// Update replaces the stored entry
	updated := sampleTrade("t1", "u1")
	updated.Trade.Symbol = "ETHUSDT"
	require.NoError(t, repo.Update(updated))
	got, err = repo.GetByID("t1")
	require.NoError(t, err)
	assert.Equal(t, "ETHUSDT", got.Trade.Symbol)

	require.NoError(t, repo.Delete("t1"))
	_, err = repo.GetByID("t1")
	assert.Error(t, err)
	assert.Error(t, repo.Delete("t1"))
}

func TestInMemoryTradeRepositoryListNewestFirst(t *testing.T) {
	repo := NewInMemoryTradeRepository()

	require.NoError(t, repo.Create(sampleTrade("t1", "u1")))
	require.NoError(t, repo.Create(sampleTrade("t2", "u1")))
	require.NoError(t, repo.Create(sampleTrade("t3", "u2")))

	all := repo.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "t3", all[0].ID)
	assert.Equal(t, "t2", all[1].ID)
	assert.Equal(t, "t1", all[2].ID)
}

func TestInMemoryTradeRepositoryGetByUser(t *testing.T) {
	repo := NewInMemoryTradeRepository()

	require.NoError(t, repo.Create(sampleTrade("t1", "u1")))
	require.NoError(t, repo.Create(sampleTrade("t2", "u2")))
	require.NoError(t, repo.Create(sampleTrade("t3", "u1")))

	mine := repo.GetByUser("u1")
	require.Len(t, mine, 2)
	assert.Equal(t, "t3", mine[0].ID)
	assert.Equal(t, "t1", mine[1].ID)

	assert.Empty(t, repo.GetByUser("nobody"))
}

func TestInMemoryTradeRepositoryUpdateMissing(t *testing.T) {
	repo := NewInMemoryTradeRepository()
	assert.Error(t, repo.Update(sampleTrade("ghost", "u1")))
}

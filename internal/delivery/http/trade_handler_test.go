package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal-backend/internal/domain"
	"tradejournal-backend/internal/repository"
)

func newTradeHandler() (*TradeHandler, *repository.InMemoryTradeRepository) {
	repo := repository.NewInMemoryTradeRepository()
	return NewTradeHandler(repo, nil), repo
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestTradeHandlerCreateComputesDerivedFields(t *testing.T) {
	handler, _ := newTradeHandler()

	lev, margin, exit := 1.0, 2.0, 150.0
	rec := postJSON(t, handler.Create, "/api/trades", domain.Trade{
		Trade: domain.TradeDetails{
			Symbol:     "BTCUSDT",
			Side:       domain.SideLong,
			EntryPrice: 100,
			ExitPrice:  &exit,
			Leverage:   &lev,
			Margin:     &margin,
			EntryDate:  "2024-01-01",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.Trade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.Trade.Size)
	assert.Equal(t, 2.0, *created.Trade.Size)
	require.NotNil(t, created.Trade.PnlUSD)
	assert.Equal(t, 100.0, *created.Trade.PnlUSD)
	require.NotNil(t, created.Trade.WinLoss)
	assert.Equal(t, domain.ResultWin, *created.Trade.WinLoss)
}

func TestTradeHandlerCreateIgnoresClientDerivedFields(t *testing.T) {
	handler, _ := newTradeHandler()

	bogusSize := 1e9
	bogusWin := domain.ResultWin
	rec := postJSON(t, handler.Create, "/api/trades", domain.Trade{
		Trade: domain.TradeDetails{
			Symbol:     "BTCUSDT",
			Side:       domain.SideLong,
			EntryPrice: 100,
			EntryDate:  "2024-01-01",
			Size:       &bogusSize,
			WinLoss:    &bogusWin,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.Trade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	// No leverage/margin: size cleared; no exit: win_loss cleared.
	assert.Nil(t, created.Trade.Size)
	assert.Nil(t, created.Trade.WinLoss)
}

func TestTradeHandlerCreateValidation(t *testing.T) {
	handler, _ := newTradeHandler()

	rec := postJSON(t, handler.Create, "/api/trades", domain.Trade{
		Trade: domain.TradeDetails{Side: domain.SideLong, EntryPrice: 100},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, handler.Create, "/api/trades", domain.Trade{
		Trade: domain.TradeDetails{Symbol: "BTCUSDT", Side: "SIDEWAYS", EntryPrice: 100},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTradeHandlerUpdateReplacesAndRecomputes(t *testing.T) {
	handler, repo := newTradeHandler()

	lev, margin := 1.0, 2.0
	seed := &domain.Trade{
		ID: "t1",
		Trade: domain.TradeDetails{
			Symbol:     "BTCUSDT",
			Side:       domain.SideLong,
			EntryPrice: 100,
			Leverage:   &lev,
			Margin:     &margin,
			EntryDate:  "2024-01-01",
		},
		Setup: &domain.TradeSetup{Name: strPtr("breakout")},
	}
	require.NoError(t, repo.Create(seed))

	exit := 150.0
	exitDate := "2024-01-10"
	body, err := json.Marshal(domain.Trade{
		Trade: domain.TradeDetails{
			Symbol:     "BTCUSDT",
			Side:       domain.SideLong,
			EntryPrice: 100,
			ExitPrice:  &exit,
			Leverage:   &lev,
			Margin:     &margin,
			EntryDate:  "2024-01-01",
			ExitDate:   &exitDate,
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/trades/update?id=t1", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Trade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.NotNil(t, updated.Trade.PnlUSD)
	assert.Equal(t, 100.0, *updated.Trade.PnlUSD)
	require.NotNil(t, updated.Trade.DurationDays)
	assert.Equal(t, 9, *updated.Trade.DurationDays)
	// Sub-records are replaced wholesale: the omitted setup is gone.
	assert.Nil(t, updated.Setup)

	stored, err := repo.GetByID("t1")
	require.NoError(t, err)
	assert.Nil(t, stored.Setup)
}

func TestTradeHandlerUpdateMissing(t *testing.T) {
	handler, _ := newTradeHandler()

	req := httptest.NewRequest(http.MethodPut, "/api/trades/update?id=ghost", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTradeHandlerDelete(t *testing.T) {
	handler, repo := newTradeHandler()
	require.NoError(t, repo.Create(&domain.Trade{ID: "t1", Trade: domain.TradeDetails{Symbol: "BTCUSDT", Side: domain.SideLong}}))

	req := httptest.NewRequest(http.MethodDelete, "/api/trades/delete?id=t1", nil)
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/trades/delete?id=t1", nil)
	rec = httptest.NewRecorder()
	handler.Delete(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTradeHandlerListFiltersByUser(t *testing.T) {
	handler, repo := newTradeHandler()
	require.NoError(t, repo.Create(&domain.Trade{ID: "t1", UserID: "u1", Trade: domain.TradeDetails{Symbol: "A", Side: domain.SideLong}}))
	require.NoError(t, repo.Create(&domain.Trade{ID: "t2", UserID: "u2", Trade: domain.TradeDetails{Symbol: "B", Side: domain.SideLong}}))

	req := httptest.NewRequest(http.MethodGet, "/api/trades?user_id=u1", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var trades []domain.Trade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trades))
	require.Len(t, trades, 1)
	assert.Equal(t, "t1", trades[0].ID)
}

func strPtr(v string) *string { return &v }

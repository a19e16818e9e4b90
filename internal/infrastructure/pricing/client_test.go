package pricing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimplePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		w.Write([]byte(`{"bitcoin":{"usd":64123.5}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	price, err := client.GetSimplePrice("bitcoin")
	require.NoError(t, err)
	assert.Equal(t, 64123.5, price)
}

func TestGetSimplePriceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GetSimplePrice("bitcoin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGetSimplePriceBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GetSimplePrice("bitcoin")
	assert.Error(t, err)
}

func TestGetSimplePriceMissingCoin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GetSimplePrice("bitcoin")
	assert.Error(t, err)
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}

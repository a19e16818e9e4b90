package pricing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.coingecko.com"

// Client fetches spot prices from the CoinGecko simple-price endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetSimplePrice returns the USD price for one coin identifier
// (e.g. "bitcoin"). The response shape is {"bitcoin":{"usd":12345.67}}.
func (c *Client) GetSimplePrice(coinID string) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd",
		c.baseURL, url.QueryEscape(coinID))

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("coingecko API error: %d", resp.StatusCode)
	}

	var data map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, err
	}

	price, ok := data[coinID]["usd"]
	if !ok {
		return 0, fmt.Errorf("no usd price for %s in response", coinID)
	}
	return price, nil
}

package usecase

import (
	"log"
	"time"
)

// PriceSource fetches the live USD price for one coin identifier.
type PriceSource interface {
	GetSimplePrice(coinID string) (float64, error)
}

// PriceFeedUsecase polls a price source on a fixed interval and feeds the
// result into the portfolio's live-price map. A failed or slow fetch is
// logged and skipped; the aggregator keeps using its fallback price.
type PriceFeedUsecase struct {
	portfolio *PortfolioUsecase
	source    PriceSource
	symbol    string // portfolio symbol to update, e.g. "BTC"
	coinID    string // price-source identifier, e.g. "bitcoin"
	interval  time.Duration
}

func NewPriceFeedUsecase(portfolio *PortfolioUsecase, source PriceSource, symbol, coinID string, interval time.Duration) *PriceFeedUsecase {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &PriceFeedUsecase{
		portfolio: portfolio,
		source:    source,
		symbol:    symbol,
		coinID:    coinID,
		interval:  interval,
	}
}

// Run starts the polling loop. It never returns; start it with go.
func (uc *PriceFeedUsecase) Run() {
	ticker := time.NewTicker(uc.interval)
	defer ticker.Stop()

	// Initial fetch before the first tick
	uc.Poll()

	for range ticker.C {
		uc.Poll()
	}
}

// Poll performs one fetch-and-store cycle.
func (uc *PriceFeedUsecase) Poll() {
	price, err := uc.source.GetSimplePrice(uc.coinID)
	if err != nil {
		log.Printf("Price feed: error fetching %s price: %v", uc.coinID, err)
		return
	}
	uc.portfolio.SetPrice(uc.symbol, price)
}

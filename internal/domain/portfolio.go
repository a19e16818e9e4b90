package domain

// BuyOrder is a single purchase of a symbol, the unit the portfolio
// aggregator folds into average cost.
type BuyOrder struct {
	ID     string  `json:"id"`
	Shares float64 `json:"shares"`
	Price  float64 `json:"price"`
	Date   string  `json:"date"` // YYYY-MM-DD
}

// PositionSummary is the aggregated view of one symbol's holdings.
type PositionSummary struct {
	Symbol         string  `json:"symbol"`
	TotalShares    float64 `json:"totalShares"`
	TotalCost      float64 `json:"totalCost"`
	AverageCost    float64 `json:"averageCost"`
	CurrentPrice   float64 `json:"currentPrice"`
	LivePrice      bool    `json:"livePrice"` // false when CurrentPrice fell back to AverageCost
	TotalValue     float64 `json:"totalValue"`
	Pnl            float64 `json:"pnl"`
	PnlPercent     float64 `json:"pnlPercent"`
	PortfolioShare float64 `json:"portfolioShare"`
}

// PortfolioRepository defines the interface for buy-order storage.
// A symbol whose last order was removed keeps its key with an empty list;
// its aggregates read as zero rather than disappearing.
type PortfolioRepository interface {
	AddOrder(symbol string, order BuyOrder)
	RemoveOrder(symbol, orderID string) error
	GetOrders(symbol string) []BuyOrder
	GetAllOrders() map[string][]BuyOrder
}

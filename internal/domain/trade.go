package domain

// Trade side values.
const (
	SideLong  = "LONG"
	SideShort = "SHORT"
)

// Win/loss classification values.
const (
	ResultWin  = "W"
	ResultLoss = "L"
)

// TradeDetails is the core sub-record of a journal entry. Derived fields
// (Size, DurationDays, PnlPercent, PnlUSD, WinLoss) are never accepted from
// clients as-is; they are recomputed on every write.
type TradeDetails struct {
	Symbol       string   `json:"symbol"`
	Side         string   `json:"side"` // LONG or SHORT
	Leverage     *float64 `json:"leverage,omitempty"`
	Size         *float64 `json:"size,omitempty"` // derived: leverage * margin
	EntryPrice   float64  `json:"entry_price"`
	ExitPrice    *float64 `json:"exit_price,omitempty"`
	EntryDate    string   `json:"entry_date"` // YYYY-MM-DD
	ExitDate     *string  `json:"exit_date,omitempty"`
	DurationDays *int     `json:"duration_days,omitempty"` // derived
	Margin       *float64 `json:"margin,omitempty"`
	FeeUSD       *float64 `json:"fee_usd,omitempty"`
	PnlPercent   *float64 `json:"pnl_percent,omitempty"` // derived
	PnlUSD       *float64 `json:"pnl_usd,omitempty"`     // derived
	WinLoss      *string  `json:"win_loss,omitempty"`    // derived, W or L
	Grade        *string  `json:"grade,omitempty"`       // A-F
	Note         *string  `json:"note,omitempty"`
}

// TradeSetup describes why the trade was taken.
type TradeSetup struct {
	Name          *string `json:"name,omitempty"`
	Reason        *string `json:"reason,omitempty"`
	Timeframe     *string `json:"timeframe,omitempty"`
	EntryChartURL *string `json:"entry_chart_url,omitempty"`
}

// TradeStop describes the stop-loss plan.
type TradeStop struct {
	Condition *string  `json:"condition,omitempty"`
	SlPercent *float64 `json:"sl_percent,omitempty"`
	RiskUSD   *float64 `json:"risk_usd,omitempty"`
}

// TradeExit describes the exit plan and how it was executed.
type TradeExit struct {
	Type          *string  `json:"type,omitempty"` // TP, SL or Manual
	RRR           *float64 `json:"rrr,omitempty"`
	TpPercent     *float64 `json:"tp_percent,omitempty"`
	ExitChartURL  *string  `json:"exit_chart_url,omitempty"`
	ExitPlan      *string  `json:"exit_plan,omitempty"`
	ExitExecution *string  `json:"exit_execution,omitempty"`
}

// Trade is a full journal entry. Sub-records other than the core details are
// optional and replaced wholesale on update.
type Trade struct {
	ID           string         `json:"_id,omitempty"`
	UserID       string         `json:"user_id,omitempty"`
	Trade        TradeDetails   `json:"trade"`
	Setup        *TradeSetup    `json:"setup,omitempty"`
	Stop         *TradeStop     `json:"stop,omitempty"`
	Exit         *TradeExit     `json:"exit,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

// Closed reports whether the trade has an exit fill recorded.
func (t *Trade) Closed() bool {
	return t.Trade.ExitPrice != nil
}

// TradeRepository defines the interface for trade journal storage.
type TradeRepository interface {
	Create(trade *Trade) error
	GetByID(id string) (*Trade, error)
	GetAll() []*Trade
	GetByUser(userID string) []*Trade
	Update(trade *Trade) error
	Delete(id string) error
}

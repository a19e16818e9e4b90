package usecase

import "math"

// PositionSizeInput holds the four sizing inputs. All must be strictly
// positive for a result to be produced.
type PositionSizeInput struct {
	AccountBalance     float64 `json:"account_balance"`
	RiskPercentage     float64 `json:"risk_percentage"`
	StopLossPercentage float64 `json:"stop_loss_percentage"`
	Leverage           float64 `json:"leverage"`
}

// PositionSizeResult is the sizing recommendation. RemainingTrades counts
// consecutive full losses until the balance is nominally exhausted at the
// given risk percentage; RemainingTradesDisplay subtracts the trade being
// sized right now, which is the figure shown to the user.
type PositionSizeResult struct {
	PositionSize           float64 `json:"position_size"`
	RiskAmount             float64 `json:"risk_amount"`
	RiskPerShare           float64 `json:"risk_per_share"`
	Shares                 float64 `json:"shares"`
	RemainingTrades        int     `json:"remaining_trades"`
	RemainingTradesDisplay int     `json:"remaining_trades_display"`
}

// DefaultPositionSizeInput returns the documented reset defaults.
func DefaultPositionSizeInput() PositionSizeInput {
	return PositionSizeInput{
		AccountBalance:     10000,
		RiskPercentage:     2,
		StopLossPercentage: 1,
		Leverage:           1,
	}
}

// CalculatePositionSize sizes a position from account balance, per-trade
// risk, stop distance and leverage. Any non-positive input yields nil:
// no result, no error.
func CalculatePositionSize(in PositionSizeInput) *PositionSizeResult {
	if in.AccountBalance <= 0 || in.RiskPercentage <= 0 ||
		in.StopLossPercentage <= 0 || in.Leverage <= 0 {
		return nil
	}

	riskAmount := in.AccountBalance * in.RiskPercentage / 100
	positionSize := riskAmount / (in.StopLossPercentage / 100) * in.Leverage
	remaining := int(math.Floor(100 / in.RiskPercentage))

	return &PositionSizeResult{
		PositionSize:           positionSize,
		RiskAmount:             riskAmount,
		RiskPerShare:           in.StopLossPercentage,
		Shares:                 0, // needs an entry price to compute
		RemainingTrades:        remaining,
		RemainingTradesDisplay: remaining - 1,
	}
}

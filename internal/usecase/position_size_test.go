package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePositionSizeDefaults(t *testing.T) {
	result := CalculatePositionSize(DefaultPositionSizeInput())

	require.NotNil(t, result)
	assert.Equal(t, 200.0, result.RiskAmount)
	assert.Equal(t, 20000.0, result.PositionSize)
	assert.Equal(t, 1.0, result.RiskPerShare)
	assert.Equal(t, 0.0, result.Shares)
	assert.Equal(t, 50, result.RemainingTrades)
	// The displayed figure counts the trade being sized as already spent.
	assert.Equal(t, 49, result.RemainingTradesDisplay)
}

func TestCalculatePositionSizeLeverage(t *testing.T) {
	result := CalculatePositionSize(PositionSizeInput{
		AccountBalance:     10000,
		RiskPercentage:     2,
		StopLossPercentage: 1,
		Leverage:           5,
	})

	require.NotNil(t, result)
	assert.Equal(t, 200.0, result.RiskAmount)
	assert.Equal(t, 100000.0, result.PositionSize)
}

func TestCalculatePositionSizeInvalidInputs(t *testing.T) {
	base := DefaultPositionSizeInput()

	tests := []struct {
		name   string
		modify func(*PositionSizeInput)
	}{
		{"zero balance", func(in *PositionSizeInput) { in.AccountBalance = 0 }},
		{"negative balance", func(in *PositionSizeInput) { in.AccountBalance = -100 }},
		{"zero risk", func(in *PositionSizeInput) { in.RiskPercentage = 0 }},
		{"negative risk", func(in *PositionSizeInput) { in.RiskPercentage = -2 }},
		{"zero stop loss", func(in *PositionSizeInput) { in.StopLossPercentage = 0 }},
		{"zero leverage", func(in *PositionSizeInput) { in.Leverage = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.modify(&in)
			assert.Nil(t, CalculatePositionSize(in))
		})
	}
}

func TestCalculatePositionSizeRemainingTradesFloor(t *testing.T) {
	result := CalculatePositionSize(PositionSizeInput{
		AccountBalance:     10000,
		RiskPercentage:     3,
		StopLossPercentage: 1,
		Leverage:           1,
	})

	require.NotNil(t, result)
	// floor(100/3) = 33
	assert.Equal(t, 33, result.RemainingTrades)
	assert.Equal(t, 32, result.RemainingTradesDisplay)
}

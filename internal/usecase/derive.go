package usecase

import (
	"math"
	"time"

	"tradejournal-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// Recalculate recomputes every derived field of a trade in place: position
// size from leverage and margin, P&L and win/loss once an exit fill exists,
// and holding duration once both dates exist. Missing or unparsable inputs
// clear the corresponding derived fields instead of producing an error, so
// stale values never survive an edit.
func Recalculate(t *domain.Trade) {
	recalcSize(&t.Trade)
	recalcPnl(&t.Trade)
	recalcDuration(&t.Trade)
}

// recalcSize keeps size = leverage * margin. Size is never hand-edited;
// when either factor is absent the size is cleared.
func recalcSize(d *domain.TradeDetails) {
	if d.Leverage != nil && d.Margin != nil &&
		!math.IsNaN(*d.Leverage) && !math.IsInf(*d.Leverage, 0) &&
		!math.IsNaN(*d.Margin) && !math.IsInf(*d.Margin, 0) {
		size := *d.Leverage * *d.Margin
		d.Size = &size
		return
	}
	d.Size = nil
}

func recalcPnl(d *domain.TradeDetails) {
	if d.ExitPrice == nil || d.Size == nil {
		d.PnlUSD = nil
		d.PnlPercent = nil
		d.WinLoss = nil
		return
	}

	var pnl float64
	if d.Side == domain.SideShort {
		pnl = (d.EntryPrice - *d.ExitPrice) * *d.Size
	} else {
		pnl = (*d.ExitPrice - d.EntryPrice) * *d.Size
	}
	d.PnlUSD = &pnl

	// Zero cost basis would divide by zero; report 0% instead of NaN.
	pct := 0.0
	if basis := d.EntryPrice * *d.Size; basis != 0 {
		pct = pnl / basis * 100
	}
	d.PnlPercent = &pct

	// A flat trade counts as a loss.
	result := domain.ResultLoss
	if pnl > 0 {
		result = domain.ResultWin
	}
	d.WinLoss = &result
}

func recalcDuration(d *domain.TradeDetails) {
	d.DurationDays = nil
	if d.EntryDate == "" || d.ExitDate == nil {
		return
	}

	entry, err := time.Parse(dateLayout, d.EntryDate)
	if err != nil {
		return
	}
	exit, err := time.Parse(dateLayout, *d.ExitDate)
	if err != nil {
		return
	}

	days := int(math.Ceil(exit.Sub(entry).Hours() / 24))
	d.DurationDays = &days
}

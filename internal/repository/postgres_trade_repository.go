package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradejournal-backend/internal/domain"
)

// PostgresTradeRepository stores journal entries in Postgres. The core
// trade sub-record maps to scalar columns (nullable for optionals); the
// setup/stop/exit sub-records and custom fields are jsonb documents since
// they are replaced wholesale on every edit.
type PostgresTradeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTradeRepository(pool *pgxpool.Pool) *PostgresTradeRepository {
	return &PostgresTradeRepository{pool: pool}
}

const tradeColumns = `
	id, user_id, symbol, side, leverage, size, entry_price, exit_price,
	entry_date, exit_date, duration_days, margin, fee_usd,
	pnl_percent, pnl_usd, win_loss, grade, note,
	setup, stop, exit_plan, custom_fields`

func (r *PostgresTradeRepository) Create(trade *domain.Trade) error {
	if trade == nil {
		return errors.New("nil trade")
	}

	args, err := tradeArgs(trade)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(context.Background(), `
		insert into trades(`+tradeColumns+`)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
	`, args...)
	return err
}

func (r *PostgresTradeRepository) GetByID(id string) (*domain.Trade, error) {
	row := r.pool.QueryRow(context.Background(), `
		select `+tradeColumns+` from trades where id = $1
	`, id)

	t, err := scanTrade(row)
	if err != nil {
		return nil, fmt.Errorf("trade with ID %s not found", id)
	}
	return t, nil
}

func (r *PostgresTradeRepository) GetAll() []*domain.Trade {
	return r.query(`select `+tradeColumns+` from trades order by created_at desc`)
}

func (r *PostgresTradeRepository) GetByUser(userID string) []*domain.Trade {
	return r.query(`select `+tradeColumns+` from trades where user_id = $1 order by created_at desc`, userID)
}

func (r *PostgresTradeRepository) query(sql string, args ...any) []*domain.Trade {
	rows, err := r.pool.Query(context.Background(), sql, args...)
	if err != nil {
		return []*domain.Trade{}
	}
	defer rows.Close()

	trades := make([]*domain.Trade, 0)
	for rows.Next() {
		t, scanErr := scanTrade(rows)
		if scanErr != nil {
			continue
		}
		trades = append(trades, t)
	}
	return trades
}

func (r *PostgresTradeRepository) Update(trade *domain.Trade) error {
	if trade == nil {
		return errors.New("nil trade")
	}

	args, err := tradeArgs(trade)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(context.Background(), `
		update trades set
			user_id=$2, symbol=$3, side=$4, leverage=$5, size=$6,
			entry_price=$7, exit_price=$8, entry_date=$9, exit_date=$10,
			duration_days=$11, margin=$12, fee_usd=$13,
			pnl_percent=$14, pnl_usd=$15, win_loss=$16, grade=$17, note=$18,
			setup=$19, stop=$20, exit_plan=$21, custom_fields=$22
		where id=$1
	`, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trade not found")
	}
	return nil
}

func (r *PostgresTradeRepository) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `delete from trades where id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trade not found")
	}
	return nil
}

// Helpers

type scanner interface {
	Scan(dest ...any) error
}

func tradeArgs(trade *domain.Trade) ([]any, error) {
	setup, err := nullableJSON(trade.Setup)
	if err != nil {
		return nil, err
	}
	stop, err := nullableJSON(trade.Stop)
	if err != nil {
		return nil, err
	}
	exit, err := nullableJSON(trade.Exit)
	if err != nil {
		return nil, err
	}
	custom, err := nullableJSON(trade.CustomFields)
	if err != nil {
		return nil, err
	}

	d := trade.Trade
	return []any{
		trade.ID,
		trade.UserID,
		d.Symbol,
		d.Side,
		nullableFloat(d.Leverage),
		nullableFloat(d.Size),
		d.EntryPrice,
		nullableFloat(d.ExitPrice),
		d.EntryDate,
		nullableText(d.ExitDate),
		nullableInt(d.DurationDays),
		nullableFloat(d.Margin),
		nullableFloat(d.FeeUSD),
		nullableFloat(d.PnlPercent),
		nullableFloat(d.PnlUSD),
		nullableText(d.WinLoss),
		nullableText(d.Grade),
		nullableText(d.Note),
		setup,
		stop,
		exit,
		custom,
	}, nil
}

func scanTrade(s scanner) (*domain.Trade, error) {
	var t domain.Trade
	var leverage, size, exitPrice, margin, feeUSD, pnlPercent, pnlUSD pgtype.Float8
	var exitDate, winLoss, grade, note pgtype.Text
	var durationDays pgtype.Int4
	var setup, stop, exit, custom []byte

	if err := s.Scan(
		&t.ID,
		&t.UserID,
		&t.Trade.Symbol,
		&t.Trade.Side,
		&leverage,
		&size,
		&t.Trade.EntryPrice,
		&exitPrice,
		&t.Trade.EntryDate,
		&exitDate,
		&durationDays,
		&margin,
		&feeUSD,
		&pnlPercent,
		&pnlUSD,
		&winLoss,
		&grade,
		&note,
		&setup,
		&stop,
		&exit,
		&custom,
	); err != nil {
		return nil, err
	}

	t.Trade.Leverage = floatPtr(leverage)
	t.Trade.Size = floatPtr(size)
	t.Trade.ExitPrice = floatPtr(exitPrice)
	t.Trade.Margin = floatPtr(margin)
	t.Trade.FeeUSD = floatPtr(feeUSD)
	t.Trade.PnlPercent = floatPtr(pnlPercent)
	t.Trade.PnlUSD = floatPtr(pnlUSD)
	t.Trade.ExitDate = textPtr(exitDate)
	t.Trade.WinLoss = textPtr(winLoss)
	t.Trade.Grade = textPtr(grade)
	t.Trade.Note = textPtr(note)
	if durationDays.Valid {
		v := int(durationDays.Int32)
		t.Trade.DurationDays = &v
	}

	if setup != nil {
		t.Setup = &domain.TradeSetup{}
		if err := json.Unmarshal(setup, t.Setup); err != nil {
			t.Setup = nil
		}
	}
	if stop != nil {
		t.Stop = &domain.TradeStop{}
		if err := json.Unmarshal(stop, t.Stop); err != nil {
			t.Stop = nil
		}
	}
	if exit != nil {
		t.Exit = &domain.TradeExit{}
		if err := json.Unmarshal(exit, t.Exit); err != nil {
			t.Exit = nil
		}
	}
	if custom != nil {
		if err := json.Unmarshal(custom, &t.CustomFields); err != nil {
			t.CustomFields = nil
		}
	}

	return &t, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Valid: true, Float64: *v}
}

func nullableText(v *string) any {
	if v == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{Valid: true, String: *v}
}

func nullableInt(v *int) any {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Valid: true, Int32: int32(*v)}
}

// nullableJSON marshals a sub-record for a jsonb column; nil stays NULL.
// The any-typed argument holds a typed nil pointer for absent sub-records,
// so it is checked via marshaling to "null" rather than == nil.
func nullableJSON(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	return b, nil
}

func floatPtr(v pgtype.Float8) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func textPtr(v pgtype.Text) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// compile-time check
var _ domain.TradeRepository = (*PostgresTradeRepository)(nil)

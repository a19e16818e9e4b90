package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the minimal tables needed by this app.
// This keeps setup simple (no external migration tool), but still gives persistence.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`create table if not exists users (
			id text primary key,
			email text not null unique,
			username text not null,
			first_name text null,
			last_name text null,
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		);`,
		`create table if not exists trades (
			id text primary key,
			user_id text not null default '',
			symbol text not null,
			side text not null,
			leverage double precision null,
			size double precision null,
			entry_price double precision not null,
			exit_price double precision null,
			entry_date text not null default '',
			exit_date text null,
			duration_days int null,
			margin double precision null,
			fee_usd double precision null,
			pnl_percent double precision null,
			pnl_usd double precision null,
			win_loss text null,
			grade text null,
			note text null,
			setup jsonb null,
			stop jsonb null,
			exit_plan jsonb null,
			custom_fields jsonb null,
			created_at timestamptz not null default now()
		);`,
		`create index if not exists trades_user_id_idx on trades(user_id);`,
		`create index if not exists trades_symbol_entry_date_idx on trades(symbol, entry_date desc);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

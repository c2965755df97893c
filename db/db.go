package db

import (
	"context"
	"fmt"

	"restaurant-desk/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is nil unless the menu catalog is read from Postgres.
var Pool *pgxpool.Pool

func Init(ctx context.Context, cfg config.DBConfig) error {
	var err error
	Pool, err = pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := Pool.Ping(ctx); err != nil {
		Pool.Close()
		Pool = nil
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func Close() {
	if Pool != nil {
		Pool.Close()
		Pool = nil
	}
}

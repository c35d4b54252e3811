package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisabkitab/bills-tracker/gen/ent"
	"github.com/hisabkitab/bills-tracker/internal/common"
)

// DBResult bundles the opened client with its cleanup.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens Postgres from the config, or a local SQLite file when
// sqlitePath is set (useful for single-machine runs and tests).
func InitDatabase(ctx context.Context, cfg *common.Config, sqlitePath string, logger *slog.Logger) (*DBResult, error) {
	if sqlitePath != "" {
		client, err := OpenSQLite(ctx, sqlitePath, logger)
		if err != nil {
			return nil, err
		}
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, pool, err := Open(ctx, Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client:  client,
		Pool:    pool,
		Cleanup: func() { Close(client, pool, logger) },
	}, nil
}

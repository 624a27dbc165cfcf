package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
)

// DBResult bundles the handles InitDatabase opened. Pool is nil for the
// in-memory flavor; DB is nil for Postgres.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	DB      *sql.DB
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or an in-memory
// SQLite one with the schema pre-created. The in-memory flavor is used by the
// batch CLI's dry-run mode and by tests; it needs no DSN.
func InitDatabase(ctx context.Context, cfg common.DatabaseConfig, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		client, db, err := OpenSQLiteMemory(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("using in-memory sqlite database")
		return &DBResult{
			Client: client,
			DB:     db,
			Cleanup: func() {
				_ = client.Close()
			},
		}, nil
	}

	entc, pool, err := Open(ctx, Config{
		DSN:              cfg.DSN,
		MaxConns:         cfg.MaxConns,
		MinConns:         cfg.MinConns,
		MaxConnLifetime:  cfg.MaxConnLifetime,
		MaxConnIdleTime:  cfg.MaxConnIdleTime,
		DialTimeout:      cfg.DialTimeout,
		StatementTimeout: cfg.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client: entc,
		Pool:   pool,
		Cleanup: func() {
			Close(entc, pool, logger)
		},
	}, nil
}

var memDBSeq atomic.Int64

// OpenSQLiteMemory opens a process-private SQLite database and creates the
// full schema on it. Every call gets its own database.
func OpenSQLiteMemory(ctx context.Context) (*ent.Client, *sql.DB, error) {
	dsn := fmt.Sprintf("file:validation%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", memDBSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	// shared-cache in-memory dbs vanish when the last conn closes
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	return client, db, nil
}

package repository

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SourceRepository reads the trusted source-of-truth tables. These tables are
// refreshed in bulk by a separate loader and are never written here, so the
// queries go straight through the pgx pool rather than ent.
type SourceRepository interface {
	// AggregateByConnector sums sumColumn grouped by the trimmed connector
	// column, skipping rows whose connector trims to empty.
	AggregateByConnector(ctx context.Context, table, connectorColumn, sumColumn string) (map[string]float64, error)
	Count(ctx context.Context, table string) (int64, error)
}

type sourceRepo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSourceRepository(pool *pgxpool.Pool, log *slog.Logger) SourceRepository {
	return &sourceRepo{pool: pool, log: log}
}

// table and column names come from the mapping table, not user input, but they
// are still interpolated into SQL and get a strict shape check.
var reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func checkIdentifier(name string) error {
	if !reIdentifier.MatchString(name) {
		return fmt.Errorf("invalid SQL identifier: %q", name)
	}
	return nil
}

func (r *sourceRepo) AggregateByConnector(ctx context.Context, table, connectorColumn, sumColumn string) (map[string]float64, error) {
	for _, ident := range []string{table, connectorColumn, sumColumn} {
		if err := checkIdentifier(ident); err != nil {
			return nil, err
		}
	}
	query := fmt.Sprintf(
		`SELECT btrim(%s::text) AS connector, COALESCE(SUM(%s), 0)::float8 AS total
		   FROM %s
		  WHERE btrim(%s::text) <> ''
		  GROUP BY btrim(%s::text)`,
		pgx.Identifier{connectorColumn}.Sanitize(),
		pgx.Identifier{sumColumn}.Sanitize(),
		pgx.Identifier{table}.Sanitize(),
		pgx.Identifier{connectorColumn}.Sanitize(),
		pgx.Identifier{connectorColumn}.Sanitize(),
	)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("source aggregate query failed", "table", table, "err", err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var connector string
		var total float64
		if err := rows.Scan(&connector, &total); err != nil {
			return nil, err
		}
		out[connector] = total
	}
	if err := rows.Err(); err != nil {
		r.log.Error("source aggregate scan failed", "table", table, "err", err)
		return nil, err
	}
	r.log.Debug("source.aggregated", "table", table, "groups", len(out))
	return out, nil
}

func (r *sourceRepo) Count(ctx context.Context, table string) (int64, error) {
	if err := checkIdentifier(table); err != nil {
		return 0, err
	}
	var n int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, pgx.Identifier{table}.Sanitize())
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		r.log.Error("source count failed", "table", table, "err", err)
		return 0, err
	}
	return n, nil
}

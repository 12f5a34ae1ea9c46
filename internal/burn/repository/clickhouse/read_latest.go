package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReadLatest returns the cumulative value at the highest block, zero for an empty table.
func (r *Repository) ReadLatest(ctx context.Context) (latest decimal.Decimal, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("read_latest", err, start)
	}()

	const query = `
SELECT burned
FROM burn_cumulative FINAL
ORDER BY block DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("query latest cumulative value: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	latest = decimal.Zero
	if rows.Next() {
		if err = rows.Scan(&latest); err != nil {
			return decimal.Decimal{}, fmt.Errorf("scan latest cumulative value: %w", err)
		}
	}
	if err = rows.Err(); err != nil {
		return decimal.Decimal{}, fmt.Errorf("iterate latest cumulative value: %w", err)
	}

	return latest, nil
}

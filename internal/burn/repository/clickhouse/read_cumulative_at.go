package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReadCumulativeAt returns the cumulative value at each requested block that has one.
func (r *Repository) ReadCumulativeAt(ctx context.Context, blocks []uint64) (result map[uint64]decimal.Decimal, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("read_cumulative_at", err, start)
	}()

	result = make(map[uint64]decimal.Decimal, len(blocks))
	if len(blocks) == 0 {
		return result, nil
	}

	const query = `
SELECT block, burned
FROM burn_cumulative FINAL
WHERE block IN ?`

	rows, err := r.conn.Query(ctx, query, blocks)
	if err != nil {
		return nil, fmt.Errorf("query cumulative readings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			block  uint64
			burned decimal.Decimal
		)
		if err = rows.Scan(&block, &burned); err != nil {
			return nil, fmt.Errorf("scan cumulative reading: %w", err)
		}
		result[block] = burned
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cumulative readings: %w", err)
	}

	return result, nil
}

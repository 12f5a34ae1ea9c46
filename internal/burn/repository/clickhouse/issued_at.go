package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// IssuedAt returns the ETH issued in each requested block that has an issuance row.
func (r *Repository) IssuedAt(ctx context.Context, blocks []uint64) (result map[uint64]decimal.Decimal, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("issued_at", err, start)
	}()

	result = make(map[uint64]decimal.Decimal, len(blocks))
	if len(blocks) == 0 {
		return result, nil
	}

	const query = `
SELECT block, issued
FROM eth_issuance FINAL
WHERE block IN ?`

	rows, err := r.conn.Query(ctx, query, blocks)
	if err != nil {
		return nil, fmt.Errorf("query issuance: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			block  uint64
			issued decimal.Decimal
		)
		if err = rows.Scan(&block, &issued); err != nil {
			return nil, fmt.Errorf("scan issuance: %w", err)
		}
		result[block] = issued
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issuance: %w", err)
	}

	return result, nil
}

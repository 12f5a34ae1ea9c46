package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// ReadHead returns the highest block with a cumulative reading.
func (r *Repository) ReadHead(ctx context.Context) (head uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("read_head", err, start)
	}()

	const query = `
SELECT coalesce(max(block), toUInt64(0)) AS head
FROM burn_cumulative`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("query head block: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("head block not found")
	}
	if err = rows.Scan(&head); err != nil {
		return 0, fmt.Errorf("scan head block: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate head block: %w", err)
	}

	return head, nil
}

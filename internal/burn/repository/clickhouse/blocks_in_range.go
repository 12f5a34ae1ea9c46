package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
)

// BlocksInRange returns the stamps of blocks start through end, ascending.
func (r *Repository) BlocksInRange(ctx context.Context, startBlock, endBlock uint64) (stamps []model.BlockStamp, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("blocks_in_range", err, start)
	}()

	const query = `
SELECT number, timestamp
FROM blocks FINAL
WHERE number >= ? AND number <= ?
ORDER BY number ASC`

	rows, err := r.conn.Query(ctx, query, startBlock, endBlock)
	if err != nil {
		return nil, fmt.Errorf("query blocks in range: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	return scanStamps(rows)
}

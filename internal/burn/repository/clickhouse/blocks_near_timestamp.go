package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
)

const nearTimestampLimit = 10

// BlocksNearTimestamp returns up to ten blocks with a timestamp in [ts, ts+tolerance), ascending.
func (r *Repository) BlocksNearTimestamp(ctx context.Context, ts int64, tolerance time.Duration) (stamps []model.BlockStamp, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("blocks_near_timestamp", err, start)
	}()

	const query = `
SELECT number, timestamp
FROM blocks FINAL
WHERE timestamp >= ? AND timestamp < ?
ORDER BY number ASC
LIMIT ?`

	from := time.Unix(ts, 0).UTC()
	rows, err := r.conn.Query(ctx, query, from, from.Add(tolerance), nearTimestampLimit)
	if err != nil {
		return nil, fmt.Errorf("query blocks near timestamp: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	return scanStamps(rows)
}

func scanStamps(rows driver.Rows) ([]model.BlockStamp, error) {
	var stamps []model.BlockStamp
	for rows.Next() {
		var (
			number uint64
			ts     time.Time
		)
		if err := rows.Scan(&number, &ts); err != nil {
			return nil, fmt.Errorf("scan block stamp: %w", err)
		}
		stamps = append(stamps, model.BlockStamp{Number: number, Timestamp: ts.Unix()})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block stamps: %w", err)
	}
	return stamps, nil
}

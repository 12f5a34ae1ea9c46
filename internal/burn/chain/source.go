// Package chain defines the external index contracts consumed by burn aggregation.
package chain

import (
	"context"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/shopspring/decimal"
)

// LedgerIndex resolves the cumulative burned counter.
type LedgerIndex interface {
	// ReadCumulativeAt reads the counter at every block in one request. Blocks the
	// index cannot answer are absent from the result.
	ReadCumulativeAt(ctx context.Context, blocks []uint64) (map[uint64]decimal.Decimal, error)
	ReadHead(ctx context.Context) (uint64, error)
	ReadLatest(ctx context.Context) (decimal.Decimal, error)
}

// BlockIndex maps block numbers to timestamps and back.
type BlockIndex interface {
	BlocksInRange(ctx context.Context, start, end uint64) ([]model.BlockStamp, error)
	// BlocksNearTimestamp returns blocks with timestamps in [ts, ts+tolerance).
	BlocksNearTimestamp(ctx context.Context, ts int64, tolerance time.Duration) ([]model.BlockStamp, error)
}

// IssuanceSource reports ETH issued per block. Blocks without data are absent from the result.
type IssuanceSource interface {
	IssuedAt(ctx context.Context, blocks []uint64) (map[uint64]decimal.Decimal, error)
}

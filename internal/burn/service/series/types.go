package series

import (
	"context"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerIndex interface {
		ReadCumulativeAt(ctx context.Context, blocks []uint64) (map[uint64]decimal.Decimal, error)
		ReadHead(ctx context.Context) (uint64, error)
		ReadLatest(ctx context.Context) (decimal.Decimal, error)
	}
	BlockIndex interface {
		BlocksInRange(ctx context.Context, start, end uint64) ([]model.BlockStamp, error)
		BlocksNearTimestamp(ctx context.Context, ts int64, tolerance time.Duration) ([]model.BlockStamp, error)
	}
	IssuanceSource interface {
		IssuedAt(ctx context.Context, blocks []uint64) (map[uint64]decimal.Decimal, error)
	}

	Aligner interface {
		Align(ctx context.Context, cfg model.ResolutionConfig, head uint64, now time.Time) ([]model.AlignedBlock, error)
	}
	Fetcher interface {
		Fetch(ctx context.Context, cfg model.ResolutionConfig, now time.Time) (*model.Batch, error)
	}
	Builder interface {
		Build(ctx context.Context, cfg model.ResolutionConfig, readings []model.CumulativeReading) (model.Series, error)
	}
	DeltaStrategy interface {
		Deltas(ctx context.Context, readings []model.CumulativeReading) (model.Series, error)
	}

	BatcherMetrics interface {
		ObserveFetch(resolution model.Resolution, err error, readings int, started time.Time)
	}
)

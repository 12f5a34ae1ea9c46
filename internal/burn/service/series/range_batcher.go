package series

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/goodnatureofminers/burnchart-backend/pkg/safe"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type rangeBatcher struct {
	ledger         LedgerIndex
	aligner        Aligner
	pool           pond.Pool
	subReadTimeout time.Duration
	metrics        BatcherMetrics
	logger         *zap.Logger
}

// Fetch reads the head, the latest cumulative value and one batch of cumulative readings at the
// aligned blocks of cfg.
func (b *rangeBatcher) Fetch(ctx context.Context, cfg model.ResolutionConfig, now time.Time) (*model.Batch, error) {
	started := time.Now()
	batch, err := b.fetch(ctx, cfg, now)

	readings := 0
	if batch != nil {
		readings = len(batch.Readings)
	}
	b.metrics.ObserveFetch(cfg.Resolution, err, readings, started)

	return batch, err
}

func (b *rangeBatcher) fetch(ctx context.Context, cfg model.ResolutionConfig, now time.Time) (*model.Batch, error) {
	head, latest, hasLatest, err := b.readTip(ctx)
	if err != nil {
		return nil, err
	}

	var (
		aligned []model.AlignedBlock
		values  map[uint64]decimal.Decimal
	)
	switch cfg.Alignment {
	case model.AlignBlocks:
		aligned, values, err = b.readBlockWindow(ctx, cfg, head, now)
	default:
		aligned, values, err = b.readBoundaries(ctx, cfg, head, now)
	}
	if err != nil {
		return nil, err
	}

	readings := make([]model.CumulativeReading, 0, len(aligned))
	for _, a := range aligned {
		v, ok := values[a.Block.Number]
		if !ok && a.Block.Number == head && hasLatest {
			v, ok = latest, true
		}
		if !ok {
			continue
		}
		readings = append(readings, model.CumulativeReading{
			Block:     a.Block.Number,
			Timestamp: a.Block.Timestamp,
			Value:     v,
			Period:    a.Period,
		})
	}

	return &model.Batch{Head: head, Latest: latest, Readings: readings}, nil
}

// readTip fetches the head block and the latest cumulative value concurrently. A failed latest read
// only costs the head fallback.
func (b *rangeBatcher) readTip(ctx context.Context) (uint64, decimal.Decimal, bool, error) {
	var (
		head      uint64
		latest    decimal.Decimal
		latestErr error
	)

	group := b.pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	group.SubmitErr(func() error {
		readCtx, cancel := context.WithTimeout(groupCtx, b.subReadTimeout)
		defer cancel()

		h, err := b.ledger.ReadHead(readCtx)
		if err != nil {
			return fmt.Errorf("read head: %w: %w", model.ErrSourceUnavailable, err)
		}
		head = h
		return nil
	})
	group.Submit(func() {
		readCtx, cancel := context.WithTimeout(groupCtx, b.subReadTimeout)
		defer cancel()

		latest, latestErr = b.ledger.ReadLatest(readCtx)
	})

	if err := group.Wait(); err != nil {
		return 0, decimal.Decimal{}, false, waitErr(err)
	}
	if latestErr != nil {
		b.logger.Warn("read latest cumulative value failed", zap.Error(latestErr))
		return head, decimal.Decimal{}, false, nil
	}
	return head, latest, true, nil
}

// readBlockWindow aligns the block window and reads it in parallel; both only depend on head.
func (b *rangeBatcher) readBlockWindow(ctx context.Context, cfg model.ResolutionConfig, head uint64, now time.Time) ([]model.AlignedBlock, map[uint64]decimal.Decimal, error) {
	var (
		aligned []model.AlignedBlock
		values  map[uint64]decimal.Decimal
	)

	start := safe.SubFloor(head, cfg.History)
	blocks := make([]uint64, 0, head-start+1)
	for n := start; n <= head; n++ {
		blocks = append(blocks, n)
	}

	group := b.pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	group.SubmitErr(func() error {
		alignCtx, cancel := context.WithTimeout(groupCtx, b.subReadTimeout)
		defer cancel()

		a, err := b.aligner.Align(alignCtx, cfg, head, now)
		if err != nil {
			return fmt.Errorf("align blocks: %w", err)
		}
		aligned = a
		return nil
	})
	group.SubmitErr(func() error {
		v, err := b.readCumulative(groupCtx, blocks)
		if err != nil {
			return err
		}
		values = v
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, nil, waitErr(err)
	}
	return aligned, values, nil
}

// readBoundaries needs the aligned blocks before it knows what to read.
func (b *rangeBatcher) readBoundaries(ctx context.Context, cfg model.ResolutionConfig, head uint64, now time.Time) ([]model.AlignedBlock, map[uint64]decimal.Decimal, error) {
	alignCtx, cancel := context.WithTimeout(ctx, b.subReadTimeout)
	aligned, err := b.aligner.Align(alignCtx, cfg, head, now)
	cancel()
	if err != nil {
		return nil, nil, fmt.Errorf("align %s boundaries: %w", cfg.Resolution, err)
	}
	if len(aligned) == 0 {
		return nil, nil, nil
	}

	blocks := make([]uint64, 0, len(aligned))
	for _, a := range aligned {
		blocks = append(blocks, a.Block.Number)
	}

	values, err := b.readCumulative(ctx, blocks)
	if err != nil {
		return nil, nil, err
	}
	return aligned, values, nil
}

func (b *rangeBatcher) readCumulative(ctx context.Context, blocks []uint64) (map[uint64]decimal.Decimal, error) {
	readCtx, cancel := context.WithTimeout(ctx, b.subReadTimeout)
	defer cancel()

	values, err := b.ledger.ReadCumulativeAt(readCtx, blocks)
	if err != nil {
		return nil, fmt.Errorf("read cumulative readings: %w: %w", model.ErrSourceUnavailable, err)
	}
	return values, nil
}

func waitErr(err error) error {
	if errors.Is(err, model.ErrSourceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", model.ErrSourceUnavailable, err)
}

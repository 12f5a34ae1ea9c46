package series

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/goodnatureofminers/burnchart-backend/pkg/safe"
	"github.com/goodnatureofminers/burnchart-backend/pkg/workerpool"
	"go.uber.org/zap"
)

type blockAligner struct {
	index   BlockIndex
	workers int
	logger  *zap.Logger
}

// Align picks the blocks that open each of the last cfg.History periods. Periods without a
// block inside the tolerance window are left out.
func (a *blockAligner) Align(ctx context.Context, cfg model.ResolutionConfig, head uint64, now time.Time) ([]model.AlignedBlock, error) {
	switch cfg.Alignment {
	case model.AlignBlocks:
		return a.alignBlocks(ctx, cfg, head)
	case model.AlignWallClock:
		return a.alignWallClock(ctx, cfg, head, now)
	default:
		return nil, fmt.Errorf("%w: %s: alignment %d", model.ErrInvalidConfig, cfg.Resolution, cfg.Alignment)
	}
}

func (a *blockAligner) alignBlocks(ctx context.Context, cfg model.ResolutionConfig, head uint64) ([]model.AlignedBlock, error) {
	start := safe.SubFloor(head, cfg.History)
	stamps, err := a.index.BlocksInRange(ctx, start, head)
	if err != nil {
		return nil, fmt.Errorf("blocks in range %d-%d: %w: %w", start, head, model.ErrSourceUnavailable, err)
	}

	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Number < stamps[j].Number })

	out := make([]model.AlignedBlock, 0, len(stamps))
	for _, st := range stamps {
		if st.Number < start || st.Number > head {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Block.Number == st.Number {
			continue
		}
		out = append(out, model.AlignedBlock{Period: st.Number, Block: st})
	}
	return out, nil
}

func (a *blockAligner) alignWallClock(ctx context.Context, cfg model.ResolutionConfig, head uint64, now time.Time) ([]model.AlignedBlock, error) {
	boundaries := periodBoundaries(now, cfg.Period, cfg.History)

	found, err := workerpool.Map(ctx, a.workers, boundaries, func(ctx context.Context, boundary time.Time) (*model.BlockStamp, error) {
		return a.firstBlockAt(ctx, boundary, cfg.Tolerance)
	})
	if err != nil {
		return nil, fmt.Errorf("align %s boundaries: %w: %w", cfg.Resolution, model.ErrSourceUnavailable, err)
	}

	out := make([]model.AlignedBlock, 0, len(found)+1)
	for i, st := range found {
		if st == nil {
			a.logger.Debug("no block near period boundary",
				zap.String("resolution", string(cfg.Resolution)),
				zap.Time("boundary", boundaries[i]),
				zap.Error(model.ErrDataGap))
			continue
		}
		if n := len(out); n > 0 && out[n-1].Block.Number >= st.Number {
			a.logger.Debug("boundary resolved to an already aligned block",
				zap.String("resolution", string(cfg.Resolution)),
				zap.Uint64("block", st.Number))
			continue
		}
		out = append(out, model.AlignedBlock{Period: uint64(i), Block: *st})
	}

	if n := len(out); n > 0 && out[n-1].Block.Number >= head {
		return out, nil
	}

	stamps, err := a.index.BlocksInRange(ctx, head, head)
	if err != nil {
		return nil, fmt.Errorf("head block %d: %w: %w", head, model.ErrSourceUnavailable, err)
	}
	for _, st := range stamps {
		if st.Number == head {
			out = append(out, model.AlignedBlock{Period: cfg.History, Block: st})
			break
		}
	}
	return out, nil
}

func (a *blockAligner) firstBlockAt(ctx context.Context, boundary time.Time, tolerance time.Duration) (*model.BlockStamp, error) {
	from := boundary.Unix()
	to := boundary.Add(tolerance).Unix()

	stamps, err := a.index.BlocksNearTimestamp(ctx, from, tolerance)
	if err != nil {
		return nil, err
	}

	var best *model.BlockStamp
	for i := range stamps {
		st := stamps[i]
		if st.Timestamp < from || st.Timestamp >= to {
			continue
		}
		if best == nil || st.Number < best.Number {
			best = &st
		}
	}
	return best, nil
}

// periodBoundaries returns count boundaries, oldest first, the newest being now truncated to period.
func periodBoundaries(now time.Time, period time.Duration, count uint64) []time.Time {
	last := now.UTC().Truncate(period)
	out := make([]time.Time, 0, count)
	for i := count; i > 0; i-- {
		out = append(out, last.Add(-time.Duration(i-1)*period))
	}
	return out
}

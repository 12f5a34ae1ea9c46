package series

import (
	"context"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"go.uber.org/zap"
)

type deltaBuilder struct {
	strategies map[model.Strategy]DeltaStrategy
	logger     *zap.Logger
}

// Build turns cumulative readings into per-period deltas using the strategy cfg names.
func (b *deltaBuilder) Build(ctx context.Context, cfg model.ResolutionConfig, readings []model.CumulativeReading) (model.Series, error) {
	strategy, ok := b.strategies[cfg.Strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %s: no delta strategy %q", model.ErrInvalidConfig, cfg.Resolution, cfg.Strategy)
	}

	clean := b.sanitize(cfg.Resolution, readings)
	if len(clean) < 2 {
		return model.Series{}, nil
	}
	return strategy.Deltas(ctx, clean)
}

// sanitize orders readings by block, drops duplicates and then drops readings that break the
// non-decreasing order. A dropped reading leaves a hole in the period ordinals, so no delta is
// derived across it.
func (b *deltaBuilder) sanitize(res model.Resolution, readings []model.CumulativeReading) []model.CumulativeReading {
	sorted := make([]model.CumulativeReading, len(readings))
	copy(sorted, readings)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Block < sorted[j].Block })

	out := make([]model.CumulativeReading, 0, len(sorted))
	for _, r := range sorted {
		if n := len(out); n > 0 {
			prev := out[n-1]
			if r.Block == prev.Block || r.Period <= prev.Period {
				continue
			}
		}
		out = append(out, r)
	}

	for i := firstRegression(out); i >= 0; i = firstRegression(out) {
		drop := i + 1
		if isSpike(out, i) {
			drop = i
		}
		b.logger.Warn("cumulative reading out of order, skipping",
			zap.String("resolution", string(res)),
			zap.Uint64("block", out[drop].Block),
			zap.String("value", out[drop].Value.String()),
			zap.Uint64("left_block", out[i].Block),
			zap.String("left_value", out[i].Value.String()),
			zap.Uint64("right_block", out[i+1].Block),
			zap.String("right_value", out[i+1].Value.String()))
		out = append(out[:drop], out[drop+1:]...)
	}
	return out
}

// firstRegression returns the first i with readings[i+1] below readings[i], or -1.
func firstRegression(readings []model.CumulativeReading) int {
	for i := 0; i+1 < len(readings); i++ {
		if readings[i+1].Value.LessThan(readings[i].Value) {
			return i
		}
	}
	return -1
}

// isSpike reports whether readings[i], which exceeds readings[i+1], is the outlier rather than
// readings[i+1]. It is when its neighbours agree with each other without it.
func isSpike(readings []model.CumulativeReading, i int) bool {
	if i > 0 {
		return !readings[i+1].Value.LessThan(readings[i-1].Value)
	}
	return i+2 < len(readings) && readings[i+2].Value.LessThan(readings[i].Value)
}

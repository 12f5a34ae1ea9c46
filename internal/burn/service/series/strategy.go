package series

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
)

// burnStrategy emits the difference between readings of adjacent periods.
type burnStrategy struct{}

func (burnStrategy) Deltas(_ context.Context, readings []model.CumulativeReading) (model.Series, error) {
	out := make(model.Series, 0, len(readings))
	for i := 1; i < len(readings); i++ {
		prev, cur := readings[i-1], readings[i]
		if cur.Period != prev.Period+1 {
			continue
		}
		out = append(out, model.PeriodDelta{
			X:     cur.Timestamp * 1000,
			Y:     cur.Value.Sub(prev.Value),
			Block: cur.Block,
		})
	}
	return out, nil
}

// netIssuanceStrategy reports issued minus burned per block. Blocks the issuance source does not
// know are left out.
type netIssuanceStrategy struct {
	burn     burnStrategy
	issuance IssuanceSource
}

func (s netIssuanceStrategy) Deltas(ctx context.Context, readings []model.CumulativeReading) (model.Series, error) {
	burned, err := s.burn.Deltas(ctx, readings)
	if err != nil {
		return nil, err
	}
	if len(burned) == 0 {
		return burned, nil
	}

	blocks := make([]uint64, 0, len(burned))
	for _, d := range burned {
		blocks = append(blocks, d.Block)
	}
	issued, err := s.issuance.IssuedAt(ctx, blocks)
	if err != nil {
		return nil, fmt.Errorf("read issuance: %w: %w", model.ErrSourceUnavailable, err)
	}

	out := make(model.Series, 0, len(burned))
	for _, d := range burned {
		v, ok := issued[d.Block]
		if !ok {
			continue
		}
		out = append(out, model.PeriodDelta{X: d.X, Y: v.Sub(d.Y), Block: d.Block})
	}
	return out, nil
}

// Package series derives per-period delta series from cumulative burn readings.
package series

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"go.uber.org/zap"
)

// Pipeline aligns, reads and converts one resolution's window into deltas.
type Pipeline struct {
	logger  *zap.Logger
	pool    pond.Pool
	fetcher Fetcher
	builder Builder
	now     func() time.Time
}

// NewPipeline builds a Pipeline over the given indexes.
func NewPipeline(
	ledger LedgerIndex,
	blocks BlockIndex,
	issuance IssuanceSource,
	metrics BatcherMetrics,
	logger *zap.Logger,
) (*Pipeline, error) {
	if ledger == nil {
		return nil, errors.New("ledger index is required")
	}
	if blocks == nil {
		return nil, errors.New("block index is required")
	}
	if issuance == nil {
		return nil, errors.New("issuance source is required")
	}
	if metrics == nil {
		return nil, errors.New("range batcher metrics is required")
	}

	pool := pond.NewPool(fanOutPoolSize)
	burn := burnStrategy{}

	return &Pipeline{
		logger: logger,
		pool:   pool,
		now:    time.Now,
		fetcher: &rangeBatcher{
			ledger: ledger,
			aligner: &blockAligner{
				index:   blocks,
				workers: alignWorkerCount,
				logger:  logger.Named("aligner"),
			},
			pool:           pool,
			subReadTimeout: subReadTimeout,
			metrics:        metrics,
			logger:         logger.Named("rangeBatcher"),
		},
		builder: &deltaBuilder{
			strategies: map[model.Strategy]DeltaStrategy{
				model.StrategyBurn:        burn,
				model.StrategyNetIssuance: netIssuanceStrategy{burn: burn, issuance: issuance},
			},
			logger: logger.Named("deltaBuilder"),
		},
	}, nil
}

// Fetch recomputes the full window of cfg as of now.
func (p *Pipeline) Fetch(ctx context.Context, cfg model.ResolutionConfig) (model.Series, error) {
	batch, err := p.fetcher.Fetch(ctx, cfg, p.now())
	if err != nil {
		return nil, fmt.Errorf("fetch %s readings: %w", cfg.Resolution, err)
	}

	series, err := p.builder.Build(ctx, cfg, batch.Readings)
	if err != nil {
		return nil, fmt.Errorf("build %s deltas: %w", cfg.Resolution, err)
	}

	p.logger.Debug("series recomputed",
		zap.String("resolution", string(cfg.Resolution)),
		zap.Uint64("head", batch.Head),
		zap.Int("readings", len(batch.Readings)),
		zap.Int("deltas", len(series)))
	return series, nil
}

// Close waits for in-flight sub-reads and releases the fan-out pool.
func (p *Pipeline) Close() {
	p.pool.StopAndWait()
}

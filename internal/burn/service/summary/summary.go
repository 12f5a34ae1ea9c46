// Package summary reports the running burn totals shown next to the charts.
package summary

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

const (
	lastHour           = time.Hour
	blockTimeSample    = 1000
	pastTolerance      = model.DefaultTolerance
	summaryPoolSize    = 4
	summaryReadTimeout = 5 * time.Second
)

// Service assembles model.BurnSummary from the ledger and block indexes.
type Service struct {
	logger *zap.Logger
	ledger LedgerIndex
	blocks BlockIndex
	pool   pond.Pool
}

// NewService builds a Service.
func NewService(ledger LedgerIndex, blocks BlockIndex, logger *zap.Logger) (*Service, error) {
	if ledger == nil {
		return nil, errors.New("ledger index is required")
	}
	if blocks == nil {
		return nil, errors.New("block index is required")
	}
	return &Service{
		logger: logger,
		ledger: ledger,
		blocks: blocks,
		pool:   pond.NewPool(summaryPoolSize),
	}, nil
}

// Summary returns the total burned, the amount burned during the hour before now, the head block
// and the average block time.
func (s *Service) Summary(ctx context.Context, now time.Time) (*model.BurnSummary, error) {
	var (
		head   uint64
		latest decimal.Decimal
	)

	tip := s.pool.NewGroupContext(ctx)
	tipCtx := tip.Context()
	tip.SubmitErr(func() error {
		readCtx, cancel := context.WithTimeout(tipCtx, summaryReadTimeout)
		defer cancel()

		h, err := s.ledger.ReadHead(readCtx)
		if err != nil {
			return fmt.Errorf("read head: %w", err)
		}
		head = h
		return nil
	})
	tip.SubmitErr(func() error {
		readCtx, cancel := context.WithTimeout(tipCtx, summaryReadTimeout)
		defer cancel()

		v, err := s.ledger.ReadLatest(readCtx)
		if err != nil {
			return fmt.Errorf("read latest: %w", err)
		}
		latest = v
		return nil
	})
	if err := tip.Wait(); err != nil {
		return nil, fmt.Errorf("summary: %w: %w", model.ErrSourceUnavailable, err)
	}

	var (
		past      decimal.Decimal
		hasPast   bool
		blockTime float64
	)

	rest := s.pool.NewGroupContext(ctx)
	restCtx := rest.Context()
	rest.SubmitErr(func() error {
		v, ok, err := s.readPast(restCtx, now.Add(-lastHour))
		if err != nil {
			return err
		}
		past, hasPast = v, ok
		return nil
	})
	rest.SubmitErr(func() error {
		bt, err := s.averageBlockTime(restCtx, head)
		if err != nil {
			return err
		}
		blockTime = bt
		return nil
	})
	if err := rest.Wait(); err != nil {
		return nil, fmt.Errorf("summary: %w: %w", model.ErrSourceUnavailable, err)
	}

	lastHourBurned := latest
	if hasPast {
		lastHourBurned = latest.Sub(past)
	} else {
		s.logger.Debug("no reading an hour back, reporting the whole total", zap.Time("at", now.Add(-lastHour)))
	}

	return &model.BurnSummary{
		Total:          latest,
		LastHourBurned: lastHourBurned,
		Block:          head,
		BlockTime:      blockTime,
	}, nil
}

// Close releases the fan-out pool.
func (s *Service) Close() {
	s.pool.StopAndWait()
}

func (s *Service) readPast(ctx context.Context, at time.Time) (decimal.Decimal, bool, error) {
	readCtx, cancel := context.WithTimeout(ctx, summaryReadTimeout)
	defer cancel()

	from := at.Unix()
	stamps, err := s.blocks.BlocksNearTimestamp(readCtx, from, pastTolerance)
	if err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("blocks near %d: %w", from, err)
	}

	var (
		block uint64
		found bool
	)
	to := at.Add(pastTolerance).Unix()
	for _, st := range stamps {
		if st.Timestamp < from || st.Timestamp >= to {
			continue
		}
		if !found || st.Number < block {
			block, found = st.Number, true
		}
	}
	if !found {
		return decimal.Decimal{}, false, nil
	}

	values, err := s.ledger.ReadCumulativeAt(readCtx, []uint64{block})
	if err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("read cumulative at %d: %w", block, err)
	}
	v, ok := values[block]
	return v, ok, nil
}

// averageBlockTime measures seconds per block between the head and the block blockTimeSample
// below it. Only the two end stamps are read.
func (s *Service) averageBlockTime(ctx context.Context, head uint64) (float64, error) {
	readCtx, cancel := context.WithTimeout(ctx, summaryReadTimeout)
	defer cancel()

	start := safe.SubFloor(head, blockTimeSample)
	if start == head {
		return 0, nil
	}

	first, ok, err := s.stampAt(readCtx, start)
	if err != nil || !ok {
		return 0, err
	}
	last, ok, err := s.stampAt(readCtx, head)
	if err != nil || !ok {
		return 0, err
	}
	return float64(last.Timestamp-first.Timestamp) / float64(last.Number-first.Number), nil
}

func (s *Service) stampAt(ctx context.Context, number uint64) (model.BlockStamp, bool, error) {
	stamps, err := s.blocks.BlocksInRange(ctx, number, number)
	if err != nil {
		return model.BlockStamp{}, false, fmt.Errorf("block %d: %w", number, err)
	}
	for _, st := range stamps {
		if st.Number == number {
			return st, true, nil
		}
	}
	return model.BlockStamp{}, false, nil
}

// Package cache keeps the bounded per-resolution delta series shown by charts.
package cache

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/puzpuzpuz/xsync/v4"
)

type entry struct {
	series model.Series
	cursor uint64
}

// MultiPeriodCache holds one series and one cursor per resolution. A single writer merges while
// any number of readers copy series out.
type MultiPeriodCache struct {
	registry *model.Registry
	entries  *xsync.Map[model.Resolution, entry]
	metrics  Metrics
}

// New creates an empty cache for the resolutions in registry.
func New(registry *model.Registry, metrics Metrics) (*MultiPeriodCache, error) {
	if registry == nil {
		return nil, errors.New("resolution registry is required")
	}
	if metrics == nil {
		return nil, errors.New("cache metrics is required")
	}
	return &MultiPeriodCache{
		registry: registry,
		entries:  xsync.NewMap[model.Resolution, entry](),
		metrics:  metrics,
	}, nil
}

// Merge replaces the cached series of res with a freshly computed window. It returns model.ErrStaleNoOp and leaves the cache untouched when deltas
// hold nothing past the cursor.
func (c *MultiPeriodCache) Merge(res model.Resolution, deltas model.Series) (model.Series, error) {
	cfg, err := c.registry.Lookup(res)
	if err != nil {
		return nil, err
	}

	var (
		prev   entry
		merged model.Series
		stale  bool
	)
	last := maxBlock(deltas)
	c.entries.Compute(res, func(old entry, _ bool) (entry, xsync.ComputeOp) {
		prev = old
		if len(deltas) == 0 || last <= old.cursor {
			stale = true
			return old, xsync.CancelOp
		}
		merged = mergeSeries(deltas, cfg.CacheCap)
		return entry{series: merged, cursor: merged.LastBlock()}, xsync.UpdateOp
	})

	if stale {
		err = fmt.Errorf("merge %s at cursor %d: %w", res, prev.cursor, model.ErrStaleNoOp)
		c.metrics.ObserveMerge(res, err, len(prev.series), prev.cursor)
		return nil, err
	}

	c.metrics.ObserveMerge(res, nil, len(merged), merged.LastBlock())
	return merged.Clone(), nil
}

// ActiveSeries returns a copy of the cached series for res.
func (c *MultiPeriodCache) ActiveSeries(res model.Resolution) (model.Series, error) {
	if _, err := c.registry.Lookup(res); err != nil {
		return nil, err
	}
	e, ok := c.entries.Load(res)
	if !ok {
		return model.Series{}, nil
	}
	return e.series.Clone(), nil
}

// Cursor returns the highest block merged for res, zero before the first merge.
func (c *MultiPeriodCache) Cursor(res model.Resolution) uint64 {
	e, _ := c.entries.Load(res)
	return e.cursor
}

// SwitchResolution returns what is already cached for to. Nothing is fetched or modified.
func (c *MultiPeriodCache) SwitchResolution(from, to model.Resolution) (model.Series, error) {
	if _, err := c.registry.Lookup(from); err != nil {
		return nil, err
	}
	return c.ActiveSeries(to)
}

// mergeSeries returns fresh sorted by block with duplicates collapsed to the last one, keeping the
// newest capacity entries. The cached series is dropped: every window is recomputed in full.
func mergeSeries(fresh model.Series, capacity int) model.Series {
	out := fresh.Clone()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Block < out[j].Block })

	n := 0
	for i := range out {
		if n > 0 && out[n-1].Block == out[i].Block {
			out[n-1] = out[i]
			continue
		}
		out[n] = out[i]
		n++
	}
	out = out[:n]

	if len(out) > capacity {
		out = out[len(out)-capacity:]
	}
	return out
}

func maxBlock(s model.Series) uint64 {
	var m uint64
	for _, d := range s {
		if d.Block > m {
			m = d.Block
		}
	}
	return m
}

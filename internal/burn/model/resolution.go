package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Resolution names a series granularity.
type Resolution string

const (
	Block         Resolution = "block"
	Minute        Resolution = "minute"
	Hour          Resolution = "hour"
	Day           Resolution = "day"
	BlockIssuance Resolution = "blockIssuance"
)

// Alignment describes how period boundaries map to blocks.
type Alignment int

const (
	// AlignBlocks uses the last K blocks by number.
	AlignBlocks Alignment = iota + 1
	// AlignWallClock truncates wall-clock time to the period and searches for boundary blocks.
	AlignWallClock
)

// Strategy selects how deltas are computed from readings.
type Strategy string

const (
	StrategyBurn        Strategy = "burn"
	StrategyNetIssuance Strategy = "netIssuance"
)

const (
	DefaultHistory   = 30
	DefaultCacheCap  = 30
	DefaultTolerance = 100 * time.Second
)

// ResolutionConfig carries everything that differs between resolutions.
type ResolutionConfig struct {
	Resolution        Resolution
	Title             string
	TooltipLabel      string
	Alignment         Alignment
	Period            time.Duration
	History           uint64
	CacheCap          int
	Tolerance         time.Duration
	WindowDuration    time.Duration
	Strategy          Strategy
	AnnotationVisible bool
	CacheMaxAge       time.Duration
	TooltipLayout     string
}

// FormatTooltipTitle renders the tooltip heading for a point of this resolution.
func (c ResolutionConfig) FormatTooltipTitle(d PeriodDelta) string {
	if c.Alignment == AlignBlocks {
		return "Block " + groupThousands(d.Block)
	}
	layout := c.TooltipLayout
	if layout == "" {
		layout = time.RFC3339
	}
	return time.UnixMilli(d.X).UTC().Format(layout)
}

// Validate reports malformed parameters.
func (c ResolutionConfig) Validate() error {
	if c.Resolution == "" {
		return fmt.Errorf("%w: empty resolution key", ErrInvalidConfig)
	}
	if c.History == 0 {
		return fmt.Errorf("%w: %s: history must be positive", ErrInvalidConfig, c.Resolution)
	}
	if c.CacheCap < 1 {
		return fmt.Errorf("%w: %s: cache cap must be positive", ErrInvalidConfig, c.Resolution)
	}
	if c.WindowDuration <= 0 {
		return fmt.Errorf("%w: %s: window duration must be positive", ErrInvalidConfig, c.Resolution)
	}
	switch c.Alignment {
	case AlignBlocks:
	case AlignWallClock:
		if c.Period <= 0 {
			return fmt.Errorf("%w: %s: period must be positive", ErrInvalidConfig, c.Resolution)
		}
		if c.Tolerance <= 0 {
			return fmt.Errorf("%w: %s: tolerance must be positive", ErrInvalidConfig, c.Resolution)
		}
	default:
		return fmt.Errorf("%w: %s: unknown alignment %d", ErrInvalidConfig, c.Resolution, c.Alignment)
	}
	switch c.Strategy {
	case StrategyBurn, StrategyNetIssuance:
	default:
		return fmt.Errorf("%w: %s: unknown strategy %q", ErrInvalidConfig, c.Resolution, c.Strategy)
	}
	return nil
}

// DefaultResolutions returns the stock configuration for every resolution.
func DefaultResolutions() []ResolutionConfig {
	return []ResolutionConfig{
		{
			Resolution:        Block,
			Title:             "ETH burned per block",
			TooltipLabel:      "ETH burned",
			Alignment:         AlignBlocks,
			History:           DefaultHistory,
			CacheCap:          DefaultCacheCap,
			WindowDuration:    5 * time.Minute,
			Strategy:          StrategyBurn,
			AnnotationVisible: true,
			CacheMaxAge:       10 * time.Second,
		},
		{
			Resolution:     Minute,
			Title:          "ETH burned per minute",
			TooltipLabel:   "ETH burned",
			Alignment:      AlignWallClock,
			Period:         time.Minute,
			History:        DefaultHistory,
			CacheCap:       DefaultCacheCap,
			Tolerance:      DefaultTolerance,
			WindowDuration: 30 * time.Minute,
			Strategy:       StrategyBurn,
			CacheMaxAge:    30 * time.Second,
			TooltipLayout:  "15:04",
		},
		{
			Resolution:     Hour,
			Title:          "ETH burned per hour",
			TooltipLabel:   "ETH burned",
			Alignment:      AlignWallClock,
			Period:         time.Hour,
			History:        DefaultHistory,
			CacheCap:       DefaultCacheCap,
			Tolerance:      DefaultTolerance,
			WindowDuration: 30 * time.Hour,
			Strategy:       StrategyBurn,
			CacheMaxAge:    5 * time.Minute,
			TooltipLayout:  "Jan 2 15:04",
		},
		{
			Resolution:     Day,
			Title:          "ETH burned per day",
			TooltipLabel:   "ETH burned",
			Alignment:      AlignWallClock,
			Period:         24 * time.Hour,
			History:        DefaultHistory,
			CacheCap:       DefaultCacheCap,
			Tolerance:      DefaultTolerance,
			WindowDuration: 30 * 24 * time.Hour,
			Strategy:       StrategyBurn,
			CacheMaxAge:    10 * time.Minute,
			TooltipLayout:  "Jan 2, 2006",
		},
		{
			Resolution:     BlockIssuance,
			Title:          "Net ETH issued per block",
			TooltipLabel:   "Net ETH issued",
			Alignment:      AlignBlocks,
			History:        DefaultHistory,
			CacheCap:       DefaultCacheCap,
			WindowDuration: 5 * time.Minute,
			Strategy:       StrategyNetIssuance,
			CacheMaxAge:    10 * time.Second,
		},
	}
}

// Registry is a validated set of resolution configs.
type Registry struct {
	configs map[Resolution]ResolutionConfig
}

// NewRegistry validates configs and indexes them by resolution.
func NewRegistry(configs ...ResolutionConfig) (*Registry, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("%w: no resolutions configured", ErrInvalidConfig)
	}
	r := &Registry{configs: make(map[Resolution]ResolutionConfig, len(configs))}
	for _, c := range configs {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.configs[c.Resolution]; dup {
			return nil, fmt.Errorf("%w: duplicate resolution %s", ErrInvalidConfig, c.Resolution)
		}
		r.configs[c.Resolution] = c
	}
	return r, nil
}

// Lookup returns the config for res.
func (r *Registry) Lookup(res Resolution) (ResolutionConfig, error) {
	c, ok := r.configs[res]
	if !ok {
		return ResolutionConfig{}, fmt.Errorf("%w: %q", ErrUnknownResolution, res)
	}
	return c, nil
}

// Resolutions lists the registered resolutions in a stable order.
func (r *Registry) Resolutions() []Resolution {
	out := make([]Resolution, 0, len(r.configs))
	for res := range r.configs {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func groupThousands(v uint64) string {
	s := strconv.FormatUint(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PeriodDelta is the counter increase over one period, keyed to the block closing it.
type PeriodDelta struct {
	// X is the unix timestamp of Block in milliseconds.
	X     int64
	Y     decimal.Decimal
	Block uint64
}

// MarshalJSON renders the delta as the {x, y, block} point charts consume.
func (d PeriodDelta) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X     int64   `json:"x"`
		Y     float64 `json:"y"`
		Block uint64  `json:"block"`
	}{
		X:     d.X,
		Y:     d.Y.InexactFloat64(),
		Block: d.Block,
	})
}

// Series is an ordered sequence of deltas, ascending by block.
type Series []PeriodDelta

// LastBlock returns the block of the newest delta or zero for an empty series.
func (s Series) LastBlock() uint64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Block
}

// Clone returns an independent copy of the series.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// SeriesMeta describes how the presentation layer should frame a series.
type SeriesMeta struct {
	Title             string `json:"title"`
	TooltipLabel      string `json:"tooltipLabel"`
	WindowDurationMs  int64  `json:"windowDurationMs"`
	DelayMs           int64  `json:"delayMs"`
	AxisMinMs         int64  `json:"axisMinMs"`
	AxisMaxMs         int64  `json:"axisMaxMs"`
	AnnotationVisible bool   `json:"annotationVisible"`
	LastBlock         uint64 `json:"lastBlock"`
}

// SeriesUpdate is a refresh notification pushed to the presentation layer.
type SeriesUpdate struct {
	Resolution Resolution `json:"resolution"`
	Series     Series     `json:"series"`
	Meta       SeriesMeta `json:"meta"`
}

package model

import "github.com/shopspring/decimal"

// BurnSummary holds headline totals.
type BurnSummary struct {
	Total          decimal.Decimal
	LastHourBurned decimal.Decimal
	Block          uint64
	// BlockTime is the average seconds between blocks, zero when unknown.
	BlockTime float64
}

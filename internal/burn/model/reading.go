// Package model defines domain models for burn series aggregation.
package model

import "github.com/shopspring/decimal"

// BlockStamp is a block↔time index entry.
type BlockStamp struct {
	Number    uint64
	Timestamp int64
}

// AlignedBlock is a block chosen to represent the start of a period.
// Period is the ordinal of the period inside the aligned sequence.
type AlignedBlock struct {
	Period uint64
	Block  BlockStamp
}

// CumulativeReading is the counter value as of a specific block.
type CumulativeReading struct {
	Block     uint64
	Timestamp int64
	Value     decimal.Decimal
	// Period is the position of the reading in the aligned sequence. Two readings are
	// adjacent only when their periods differ by exactly one.
	Period uint64
}

// Batch is the joined result of one batched range read.
type Batch struct {
	Head     uint64
	Latest   decimal.Decimal
	Readings []CumulativeReading
}

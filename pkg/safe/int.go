// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Int32 converts an unsigned block number to int32, the width of a GraphQL Int.
func Int32(v uint64) (int32, error) {
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("value %d out of int32 range", v)
	}
	return int32(v), nil
}

// Uint64 converts a signed integer to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// SubFloor returns a-b, or zero when b exceeds a.
func SubFloor(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

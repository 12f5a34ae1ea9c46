// Package issuance provides issuance sources for the net issuance series.
package issuance

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/shopspring/decimal"
)

// DefaultPerBlock is the approximate proof-of-work block reward.
var DefaultPerBlock = decimal.NewFromInt(2)

// Static reports the same issuance for every block at or after FromBlock.
type Static struct {
	perBlock  decimal.Decimal
	fromBlock uint64
}

func NewStatic(perBlock decimal.Decimal, fromBlock uint64) (*Static, error) {
	if perBlock.IsNegative() {
		return nil, fmt.Errorf("%w: negative issuance per block %s", model.ErrInvalidConfig, perBlock)
	}
	return &Static{perBlock: perBlock, fromBlock: fromBlock}, nil
}

func (s *Static) IssuedAt(ctx context.Context, blocks []uint64) (map[uint64]decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[uint64]decimal.Decimal, len(blocks))
	for _, b := range blocks {
		if b < s.fromBlock {
			continue
		}
		out[b] = s.perBlock
	}
	return out, nil
}

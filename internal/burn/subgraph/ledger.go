package subgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	headQuery   = `{ _meta { block { number } } }`
	latestQuery = `{ ethburned(id: "1") { burned } }`
)

// ReadHead returns the latest block indexed by the burn subgraph.
func (c *Client) ReadHead(ctx context.Context) (uint64, error) {
	var out metaResult
	if err := c.query(ctx, "read_head", c.burnURL, headQuery, nil, &out); err != nil {
		return 0, err
	}
	return out.Meta.Block.Number, nil
}

// ReadLatest returns the cumulative burned value at the subgraph head. A missing entity reads as zero.
func (c *Client) ReadLatest(ctx context.Context) (decimal.Decimal, error) {
	var out struct {
		EthBurned *burnedEntity `json:"ethburned"`
	}
	if err := c.query(ctx, "read_latest", c.burnURL, latestQuery, nil, &out); err != nil {
		return decimal.Decimal{}, err
	}
	if out.EthBurned == nil {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(out.EthBurned.Burned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("read_latest: parse burned %q: %w", out.EthBurned.Burned, err)
	}
	return v, nil
}

// ReadCumulativeAt reads the cumulative burned value at every block in one request, one aliased
// selector per block. Blocks the subgraph cannot answer are absent from the result.
func (c *Client) ReadCumulativeAt(ctx context.Context, blocks []uint64) (map[uint64]decimal.Decimal, error) {
	if len(blocks) == 0 {
		return map[uint64]decimal.Decimal{}, nil
	}

	var out map[string]json.RawMessage
	if err := c.query(ctx, "read_cumulative_at", c.burnURL, cumulativeQuery(blocks), nil, &out); err != nil {
		return nil, err
	}

	values := make(map[uint64]decimal.Decimal, len(blocks))
	for _, b := range blocks {
		raw, ok := out[blockAlias(b)]
		if !ok {
			continue
		}
		var e *burnedEntity
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("read_cumulative_at: decode block %d: %w", b, err)
		}
		if e == nil {
			continue
		}
		v, err := decimal.NewFromString(e.Burned)
		if err != nil {
			return nil, fmt.Errorf("read_cumulative_at: parse block %d burned %q: %w", b, e.Burned, err)
		}
		values[b] = v
	}
	return values, nil
}

func cumulativeQuery(blocks []uint64) string {
	var b strings.Builder
	b.WriteString("{")
	for _, n := range blocks {
		fmt.Fprintf(&b, "\n  %s: ethburned(id: \"1\", block: { number: %d }) { burned }", blockAlias(n), n)
	}
	b.WriteString("\n}")
	return b.String()
}

func blockAlias(n uint64) string {
	return fmt.Sprintf("block_%d", n)
}

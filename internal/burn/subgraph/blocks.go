package subgraph

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/goodnatureofminers/burnchart-backend/pkg/safe"
)

const (
	maxPageSize = 1000

	blocksInRangeQuery = `query ($start: Int!, $end: Int!, $first: Int!) {
  blocks(first: $first, orderBy: number, where: { number_gte: $start, number_lte: $end }) { number timestamp }
}`
	blocksNearTimestampQuery = `query ($from: BigInt!, $to: BigInt!) {
  blocks(first: 10, orderBy: number, where: { timestamp_gte: $from, timestamp_lt: $to }) { number timestamp }
}`
)

// BlocksInRange returns the indexed blocks numbered start through end, ascending. Ranges wider
// than one page are read page by page.
func (c *Client) BlocksInRange(ctx context.Context, start, end uint64) ([]model.BlockStamp, error) {
	var out []model.BlockStamp
	for from := start; from <= end; from += maxPageSize {
		to := min(from+maxPageSize-1, end)
		page, err := c.blocksPage(ctx, from, to)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if to == end {
			break
		}
	}
	return out, nil
}

func (c *Client) blocksPage(ctx context.Context, start, end uint64) ([]model.BlockStamp, error) {
	from, err := safe.Int32(start)
	if err != nil {
		return nil, fmt.Errorf("blocks_in_range: start: %w", err)
	}
	to, err := safe.Int32(end)
	if err != nil {
		return nil, fmt.Errorf("blocks_in_range: end: %w", err)
	}

	var out blocksResult
	vars := map[string]any{"start": from, "end": to, "first": maxPageSize}
	if err := c.query(ctx, "blocks_in_range", c.blocksURL, blocksInRangeQuery, vars, &out); err != nil {
		return nil, err
	}
	return toStamps("blocks_in_range", out.Blocks)
}

// BlocksNearTimestamp returns blocks whose timestamp falls in [ts, ts+tolerance).
func (c *Client) BlocksNearTimestamp(ctx context.Context, ts int64, tolerance time.Duration) ([]model.BlockStamp, error) {
	vars := map[string]any{
		"from": strconv.FormatInt(ts, 10),
		"to":   strconv.FormatInt(ts+int64(tolerance/time.Second), 10),
	}

	var out blocksResult
	if err := c.query(ctx, "blocks_near_timestamp", c.blocksURL, blocksNearTimestampQuery, vars, &out); err != nil {
		return nil, err
	}
	return toStamps("blocks_near_timestamp", out.Blocks)
}

func toStamps(operation string, blocks []blockEntity) ([]model.BlockStamp, error) {
	out := make([]model.BlockStamp, 0, len(blocks))
	for _, b := range blocks {
		n, err := strconv.ParseUint(b.Number, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: parse number %q: %w", operation, b.Number, err)
		}
		ts, err := strconv.ParseInt(b.Timestamp, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: parse timestamp %q: %w", operation, b.Timestamp, err)
		}
		out = append(out, model.BlockStamp{Number: n, Timestamp: ts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

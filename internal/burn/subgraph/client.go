// Package subgraph reads burn and block data from The Graph subgraphs over GraphQL.
package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var errNoData = errors.New("graphql response without data")

// Client sends GraphQL queries to the burn and block subgraphs at a bounded request rate.
type Client struct {
	httpClient *http.Client
	burnURL    string
	blocksURL  string
	limiter    ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient constructs a Client. rps bounds the combined request rate of both subgraphs.
func NewClient(httpClient *http.Client, burnURL, blocksURL string, rps int, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if burnURL == "" {
		return nil, errors.New("burn subgraph url is required")
	}
	if blocksURL == "" {
		return nil, errors.New("blocks subgraph url is required")
	}
	if metrics == nil {
		return nil, errors.New("subgraph metrics is required")
	}
	if rps < 1 {
		return nil, fmt.Errorf("subgraph rps must be positive, got %d", rps)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		burnURL:    burnURL,
		blocksURL:  blocksURL,
		limiter:    ratelimit.New(rps),
		metrics:    metrics,
		logger:     logger,
	}, nil
}

func (c *Client) query(ctx context.Context, operation, url, query string, vars map[string]any, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", operation, err)
	}

	c.limiter.Take()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: status %d: %s", operation, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var r response
	if err = json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}

	data := bytes.TrimSpace(r.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		if len(r.Errors) > 0 {
			return fmt.Errorf("%s: %s", operation, r.Errors[0].Message)
		}
		return fmt.Errorf("%s: %w", operation, errNoData)
	}
	if len(r.Errors) > 0 {
		// Historical selectors past the indexed range fail individually; the rest is usable.
		c.logger.Debug("partial graphql response",
			zap.String("operation", operation),
			zap.Int("errors", len(r.Errors)),
			zap.String("first", r.Errors[0].Message))
	}

	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", operation, err)
	}
	return nil
}

package subgraph

import (
	"encoding/json"
	"time"
)

type (
	// Metrics records metrics for subgraph requests.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type metaResult struct {
	Meta struct {
		Block struct {
			Number uint64 `json:"number"`
		} `json:"block"`
	} `json:"_meta"`
}

type burnedEntity struct {
	Burned string `json:"burned"`
}

type blockEntity struct {
	Number    string `json:"number"`
	Timestamp string `json:"timestamp"`
}

type blocksResult struct {
	Blocks []blockEntity `json:"blocks"`
}

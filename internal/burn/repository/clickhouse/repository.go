// Package clickhouse reads burn readings, block stamps and issuance from pre-indexed ClickHouse tables.
package clickhouse

import (
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse repository metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

// Close closes the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

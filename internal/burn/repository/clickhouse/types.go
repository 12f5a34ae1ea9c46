package clickhouse

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=rows_mock_test.go -package=$GOPACKAGE github.com/ClickHouse/clickhouse-go/v2/lib/driver Rows

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Exec(ctx context.Context, query string, args ...any) error
		Close() error
	}
)

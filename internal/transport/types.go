package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Charts interface {
		Snapshot(res model.Resolution) (model.SeriesUpdate, error)
		Refresh(ctx context.Context, res model.Resolution) (model.SeriesUpdate, error)
		SetResolution(ctx context.Context, res model.Resolution) error
		Resolution() model.Resolution
	}
	Summaries interface {
		Summary(ctx context.Context, now time.Time) (*model.BurnSummary, error)
	}
	Metrics interface {
		ObserveRequest(route string, code int, started time.Time)
		SetWebsocketClients(n int)
	}
)

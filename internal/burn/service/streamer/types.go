package streamer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Pipeline interface {
		Fetch(ctx context.Context, cfg model.ResolutionConfig) (model.Series, error)
	}
	Cache interface {
		Merge(res model.Resolution, deltas model.Series) (model.Series, error)
		ActiveSeries(res model.Resolution) (model.Series, error)
	}
	Presenter interface {
		OnUpdate(ctx context.Context, update model.SeriesUpdate) error
	}
	Metrics interface {
		ObserveTick(resolution model.Resolution, err error, started time.Time)
		ObserveRender(resolution model.Resolution, err error)
	}
)

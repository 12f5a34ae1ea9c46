package notify

import (
	"context"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Publisher interface {
		Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	}
	Subscriber interface {
		Subscribe(ctx context.Context, channels ...string) *redis.PubSub
	}
	Metrics interface {
		ObservePublish(resolution model.Resolution, err error, started time.Time)
	}
)

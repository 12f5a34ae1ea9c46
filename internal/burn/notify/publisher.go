package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/goodnatureofminers/burnchart-backend/pkg/batcher"
	"go.uber.org/zap"
)

const (
	DefaultChannelPrefix = "burnchart:series"

	flushSize     = 8
	flushInterval = 250 * time.Millisecond
	publishRPS    = 20
)

// RedisPresenter publishes each series update as JSON on <prefix>:<resolution>. Updates queued
// for the same resolution within one flush collapse to the newest.
type RedisPresenter struct {
	client  Publisher
	prefix  string
	batcher *batcher.Batcher[model.Resolution, model.SeriesUpdate]
	metrics Metrics
	logger  *zap.Logger
}

func NewRedisPresenter(client Publisher, prefix string, metrics Metrics, logger *zap.Logger) (*RedisPresenter, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if metrics == nil {
		return nil, errors.New("publisher metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}

	p := &RedisPresenter{
		client:  client,
		prefix:  prefix,
		metrics: metrics,
		logger:  logger.Named("redis_presenter"),
	}
	p.batcher = batcher.New(p.logger, resolutionOf, p.publish, flushSize, flushInterval, publishRPS)
	return p, nil
}

func resolutionOf(u model.SeriesUpdate) model.Resolution {
	return u.Resolution
}

// Start runs the publishing loop until ctx is done or Stop is called.
func (p *RedisPresenter) Start(ctx context.Context) {
	p.batcher.Start(ctx)
}

// Stop publishes what is queued and stops the loop.
func (p *RedisPresenter) Stop() {
	p.batcher.Stop()
}

// OnUpdate queues the update for publishing.
func (p *RedisPresenter) OnUpdate(ctx context.Context, update model.SeriesUpdate) error {
	if err := p.batcher.Add(ctx, update); err != nil {
		return fmt.Errorf("queue %s update: %w", update.Resolution, err)
	}
	return nil
}

// Channel returns the pub/sub channel for a resolution.
func (p *RedisPresenter) Channel(res model.Resolution) string {
	return p.prefix + ":" + string(res)
}

func (p *RedisPresenter) publish(ctx context.Context, updates []model.SeriesUpdate) error {
	var errs []error
	for _, u := range updates {
		if err := p.publishOne(ctx, u); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *RedisPresenter) publishOne(ctx context.Context, u model.SeriesUpdate) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObservePublish(u.Resolution, err, started)
	}()

	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal %s update: %w", u.Resolution, err)
	}

	channel := p.Channel(u.Resolution)
	if err = p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}

	p.logger.Debug("series update published",
		zap.String("channel", channel),
		zap.Uint64("last_block", u.Meta.LastBlock))
	return nil
}

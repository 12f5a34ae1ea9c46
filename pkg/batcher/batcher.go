// Package batcher provides a rate-limited batcher that coalesces queued items by key.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items and flushes them by size or interval. An item replaces any
// buffered item with the same key, keeping the slot of the first one.
type Batcher[K comparable, T any] struct {
	flushCallback func(context.Context, []T) error
	keyOf         func(T) K
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg   sync.WaitGroup
	stop chan struct{}
	once sync.Once
}

func New[K comparable, T any](
	logger *zap.Logger,
	keyOf func(T) K,
	flushCallback func(context.Context, []T) error,
	flushSize int,
	flushInterval time.Duration,
	rps int,
) *Batcher[K, T] {
	if flushSize <= 0 {
		flushSize = 1
	}
	return &Batcher[K, T]{
		logger:        logger,
		keyOf:         keyOf,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[K, T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. Safe to call twice.
func (b *Batcher[K, T]) Stop() {
	b.once.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item, respecting context cancellation.
func (b *Batcher[K, T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[K, T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)
	slots := make(map[K]int, b.flushSize)

	put := func(item T) {
		k := b.keyOf(item)
		if i, ok := slots[k]; ok {
			buf[i] = item
			return
		}
		slots[k] = len(buf)
		buf = append(buf, item)
	}

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flushCallback(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = make([]T, 0, b.flushSize)
		clear(slots)
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				put(item)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			flush()
			return

		case <-b.stop:
			drain()
			flush()
			return

		case item := <-b.itemsCh:
			put(item)
			if len(buf) >= b.flushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

package notify

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StartBlockSignal subscribes to the channel on which an indexer announces new blocks. Every
// announcement becomes a wake-up on the returned channel; wake-ups not yet consumed coalesce.
// An empty channel name disables the signal.
func StartBlockSignal(ctx context.Context, client Subscriber, channel string, logger *zap.Logger) (<-chan struct{}, error) {
	if channel == "" {
		return nil, nil
	}

	pubsub := client.Subscribe(ctx, channel)

	receiveCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if _, err := pubsub.Receive(receiveCtx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", channel, err)
	}

	signal := make(chan struct{}, 1)
	go func() {
		defer func() {
			_ = pubsub.Close()
		}()
		forwardSignals(ctx, pubsub.Channel(), signal, logger)
	}()

	logger.Info("listening for block announcements", zap.String("channel", channel))
	return signal, nil
}

func forwardSignals(ctx context.Context, msgs <-chan *redis.Message, signal chan<- struct{}, logger *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				logger.Warn("block announcement subscription closed")
				return
			}
			if msg.Payload == "" {
				logger.Warn("skip empty block announcement", zap.String("channel", msg.Channel))
				continue
			}
			select {
			case signal <- struct{}{}:
			default:
			}
		}
	}
}

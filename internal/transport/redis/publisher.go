package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/event"
)

const DefaultBufferSize = 64

// Publisher mirrors session events onto a Redis pub/sub channel.
// OnEvent never blocks; Run does the network work.
type Publisher struct {
	logger *slog.Logger
	client *redis.Client

	channel string
	queue   chan event.Event
}

func NewPublisher(logger *slog.Logger, client *redis.Client, channel string, bufferSize int) *Publisher {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	return &Publisher{
		logger: logger.With("component", "redisPublisher", "channel", channel),
		client: client,

		channel: channel,
		queue:   make(chan event.Event, bufferSize),
	}
}

// Channel - builds the channel name for a session.
func Channel(prefix, sessionID string) string {
	return prefix + ":" + sessionID
}

func (that *Publisher) Channel() string {
	return that.channel
}

// OnEvent queues evt for publishing and drops it when the queue is full.
func (that *Publisher) OnEvent(evt event.Event) {
	select {
	case that.queue <- evt:
	default:
		that.logger.Warn("event queue is full, dropping event", "kind", evt.Kind.String())
	}
}

// Run publishes queued events until ctx is canceled.
func (that *Publisher) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		select {
		case <-ctx.Done():
			log.Info("publisher stopped")
			return nil
		case evt := <-that.queue:
			if err := that.publish(ctx, evt); err != nil {
				log.Error("failed to publish event", "kind", evt.Kind.String(), "error", err)
			}
		}
	}
}

func (that *Publisher) publish(ctx context.Context, evt event.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", that.channel, err)
	}

	return nil
}

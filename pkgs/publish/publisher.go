package publish

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Publisher broadcasts the observable state of the layout (power state,
// locomotive/turnout status snapshots) to a Redis pub/sub channel so other
// processes (dashboards, loggers) can follow a session without talking to
// the serial port themselves.
type Publisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher constructs a Publisher against a Redis server; it does not
// connect eagerly, matching go-redis's lazy-dial client.
func NewPublisher(address, channel string) *Publisher {
	return &Publisher{
		client:  redis.NewClient(&redis.Options{Addr: address}),
		channel: channel,
	}
}

// PublishState JSON-encodes state and publishes it to the configured
// channel.
func (p *Publisher) PublishState(ctx context.Context, state map[string]any) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, payload).Err()
}

func (p *Publisher) Close() error {
	return p.client.Close()
}

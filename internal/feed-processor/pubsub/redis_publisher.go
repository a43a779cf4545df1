package pubsub

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const ChannelDashboardBroadcast = "dashboard_updates_broadcast"

type RedisBroadcaster struct {
	r *redis.Client
}

func NewRedisBroadcaster(r *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{r: r}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.r.Publish(ctx, channel, payload).Err()
}

// Envelope consumido pelo WS do dashboard-service.
// Kind: "score" | "quote"
type WSUpdate struct {
	GameID  string      `json:"gameId"`
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}

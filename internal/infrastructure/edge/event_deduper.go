package edge

import (
	"context"
	"time"

	"staffdesk/internal/usecase/interfaces"

	redis "github.com/redis/go-redis/v9"
)

const (
	dedupKeyPrefix  = "staffdesk:interaction:"
	defaultDedupTTL = 10 * time.Minute
)

// RedisEventDeduper records interaction ids with SET NX + TTL. The first
// writer of a key wins; every later Seen within the TTL reports a duplicate.
type RedisEventDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IEventDeduper = (*RedisEventDeduper)(nil)

// NewRedisEventDeduper returns nil when client is nil, keeping the nil-means-
// disabled contract all the way up to the dispatcher.
func NewRedisEventDeduper(client *redis.Client) *RedisEventDeduper {
	if client == nil {
		return nil
	}
	return &RedisEventDeduper{client: client, ttl: defaultDedupTTL}
}

func (d *RedisEventDeduper) Seen(ctx context.Context, interactionID string) (bool, error) {
	ok, err := d.client.SetNX(ctx, dedupKeyPrefix+interactionID, 1, d.ttl).Result()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

package counter

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const webhookOutcomesKey = "webhook:counters:outcomes"

// Counter tracks webhook processing outcomes in Redis. All methods are
// best-effort and tolerate a nil counter or client so webhook handling
// never depends on the cache being up.
type Counter struct {
	client *redis.Client
}

func New(client *redis.Client) *Counter {
	return &Counter{client: client}
}

// AddOutcome increments the counter for one webhook outcome
// (reconciled, ignored, unknown, unauthorized, invalid, failed).
func (c *Counter) AddOutcome(outcome string) error {
	if c == nil || c.client == nil || outcome == "" {
		return nil
	}
	return c.client.HIncrBy(context.Background(), webhookOutcomesKey, outcome, 1).Err()
}

// Snapshot returns all outcome counters recorded so far.
func (c *Counter) Snapshot() (map[string]int64, error) {
	if c == nil || c.client == nil {
		return map[string]int64{}, nil
	}
	raw, err := c.client.HGetAll(context.Background(), webhookOutcomesKey).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for field, val := range raw {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}

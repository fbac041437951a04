package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"creativestyle/internal/model"
)

// StatsCache counts how many complete submissions resolved to each creative style
type StatsCache interface {
	RecordStyle(ctx context.Context, submissionID string, style model.Style) error
	StyleCounts(ctx context.Context) (map[model.Style]int64, error)
}

const (
	styleCountsKey      = "stats:styles"
	submissionStylesKey = "stats:submission_styles"
)

// moveStyle stores the style per submission and shifts one count from the
// previous style to the new one. KEYS: submission styles hash, counts zset.
// ARGV: submission id, style.
var moveStyle = redis.NewScript(`
local prev = redis.call('HGET', KEYS[1], ARGV[1])
if prev == ARGV[2] then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
if prev then
	redis.call('ZINCRBY', KEYS[2], -1, prev)
end
redis.call('ZINCRBY', KEYS[2], 1, ARGV[2])
return 1
`)

type statsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
	}
}

// RecordStyle sets the current style of a submission. Recording the same style
// again is a no-op; a different style moves the submission's count.
func (c *statsCache) RecordStyle(ctx context.Context, submissionID string, style model.Style) error {
	keys := []string{submissionStylesKey, styleCountsKey}
	return moveStyle.Run(ctx, c.client, keys, submissionID, string(style)).Err()
}

func (c *statsCache) StyleCounts(ctx context.Context) (map[model.Style]int64, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, styleCountsKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	counts := make(map[model.Style]int64, len(model.AllStyles))
	for _, s := range model.AllStyles {
		counts[s] = 0
	}
	for _, z := range results {
		counts[model.Style(z.Member.(string))] = int64(z.Score)
	}
	return counts, nil
}

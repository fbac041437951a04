package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"creativestyle/internal/logger"
	"creativestyle/internal/model"
	"creativestyle/internal/repository"
)

const responseTTL = 24 * time.Hour

// ResponseCache is a read-through Redis layer over a ResponseRepo. Numeric answers
// are kept in one hash per submission; any write invalidates it. Redis failures
// are logged and the store is used directly.
type ResponseCache struct {
	next   repository.ResponseRepo
	client *redis.Client
	log    *logger.Logger
}

// NewResponseCache wraps next with a Redis read-through cache
func NewResponseCache(next repository.ResponseRepo, client *redis.Client, log *logger.Logger) *ResponseCache {
	return &ResponseCache{next: next, client: client, log: log}
}

func (c *ResponseCache) key(submissionID string) string {
	return fmt.Sprintf("submission:%s:numeric", submissionID)
}

func (c *ResponseCache) Save(ctx context.Context, r *model.Response) error {
	if err := c.next.Save(ctx, r); err != nil {
		return err
	}
	if err := c.client.Del(ctx, c.key(r.SubmissionID)).Err(); err != nil {
		c.log.Warn("response cache invalidate failed", "submission_id", r.SubmissionID, "error", err)
	}
	return nil
}

func (c *ResponseCache) GetBySubmissionID(ctx context.Context, submissionID string) ([]*model.Response, error) {
	return c.next.GetBySubmissionID(ctx, submissionID)
}

func (c *ResponseCache) GetNumericResponses(ctx context.Context, submissionID string) (map[string]int, error) {
	if cached, ok := c.load(ctx, submissionID); ok {
		return cached, nil
	}

	values, err := c.next.GetNumericResponses(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, submissionID, values)
	return values, nil
}

func (c *ResponseCache) load(ctx context.Context, submissionID string) (map[string]int, bool) {
	raw, err := c.client.HGetAll(ctx, c.key(submissionID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("response cache read failed", "submission_id", submissionID, "error", err)
		}
		return nil, false
	}
	if len(raw) == 0 {
		return nil, false
	}

	out := make(map[string]int, len(raw))
	for qid, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.log.Warn("response cache entry corrupt", "submission_id", submissionID, "question_id", qid)
			c.client.Del(ctx, c.key(submissionID))
			return nil, false
		}
		out[qid] = v
	}
	return out, true
}

func (c *ResponseCache) store(ctx context.Context, submissionID string, values map[string]int) {
	if len(values) == 0 {
		return
	}
	fields := make(map[string]interface{}, len(values))
	for qid, v := range values {
		fields[qid] = v
	}

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, c.key(submissionID), fields)
	pipe.Expire(ctx, c.key(submissionID), responseTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warn("response cache write failed", "submission_id", submissionID, "error", err)
	}
}

package directory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/microblog/microblog-system/internal/api/metrics"
	"github.com/microblog/microblog-system/internal/core/domain"
	"github.com/microblog/microblog-system/internal/core/ports"
)

// authorCacheTTL keeps summaries fresh enough that profile edits show
// up quickly while still absorbing per-page lookup bursts.
const authorCacheTTL = 30 * time.Second

// summaryCache is the slice of the redis client the decorator touches.
type summaryCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedDirectory decorates an AuthorDirectory with a short-lived Redis
// cache. Key format: author:<user_id>. Any Redis error is treated as a
// cache miss, so a cache outage costs one extra lookup and nothing else.
type CachedDirectory struct {
	next  ports.AuthorDirectory
	cache summaryCache
	ttl   time.Duration
}

func NewCachedDirectory(next ports.AuthorDirectory, client *redis.Client) *CachedDirectory {
	return &CachedDirectory{next: next, cache: client, ttl: authorCacheTTL}
}

func (d *CachedDirectory) Resolve(ctx context.Context, userID string) domain.AuthorSummary {
	key := "author:" + userID

	if raw, err := d.cache.Get(ctx, key).Bytes(); err == nil {
		var summary domain.AuthorSummary
		if json.Unmarshal(raw, &summary) == nil {
			metrics.AuthorCacheTotal.WithLabelValues("hit").Inc()
			return summary
		}
	}
	metrics.AuthorCacheTotal.WithLabelValues("miss").Inc()

	summary := d.next.Resolve(ctx, userID)

	// Fallback summaries are never cached: a directory recovery must be
	// visible on the next lookup, not after the TTL.
	if !summary.IsFallback() {
		if raw, err := json.Marshal(summary); err == nil {
			d.cache.Set(ctx, key, raw, d.ttl)
		}
	}

	return summary
}

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AGBR121/social-media-API/internal/platform/constants"
)

// PageCache keeps assembled feed pages in Redis for a short window. Only clean
// pages belong here; pages carrying warnings are rebuilt on every request so a
// transient store failure is not served past its lifetime.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewPageCache(client *redis.Client, logger *slog.Logger) *PageCache {
	return &PageCache{
		client: client,
		ttl:    constants.FeedCacheTTL,
		logger: logger,
	}
}

func cacheKey(followerID string, page, limit int) string {
	return fmt.Sprintf("%s%s:%d:%d", constants.RedisPrefixFeedPage, followerID, page, limit)
}

// Get returns the cached page and true on a hit. Redis errors and corrupt
// entries are treated as misses.
func (cache *PageCache) Get(context context.Context, followerID string, page, limit int) (*Page, bool) {
	raw, err := cache.client.Get(context, cacheKey(followerID, page, limit)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.Warn("feed_cache_get_failed", slog.Any("error", err))
		}
		return nil, false
	}

	var cached Page
	if err := json.Unmarshal(raw, &cached); err != nil {
		cache.logger.Warn("feed_cache_corrupt", slog.Any("error", err))
		return nil, false
	}
	return &cached, true
}

// Set stores an assembled page. Failures are logged and swallowed; the page
// has already been built and must still be served.
func (cache *PageCache) Set(context context.Context, assembled *Page, page, limit int) {
	raw, err := json.Marshal(assembled)
	if err != nil {
		cache.logger.Warn("feed_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := cache.client.Set(context, cacheKey(assembled.Follower, page, limit), raw, cache.ttl).Err(); err != nil {
		cache.logger.Warn("feed_cache_set_failed", slog.Any("error", err))
	}
}

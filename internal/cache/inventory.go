package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix = "post:%s"
)

// PostTTL bounds staleness of cached article reads. Counter rows
// (post_metrics) are never cached: the no-lost-update guarantee rests on the
// store's atomic upsert, and a cached counter would serve stale snapshots.
const PostTTL = 30 * time.Minute

// PostKey returns the cache key for a single post, keyed by slug.
func PostKey(slug string) string {
	return fmt.Sprintf(PostKeyPrefix, slug)
}

// Invalidate deletes a key, no-op when the cache is disabled.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops the cached copy of a post after an admin write.
func InvalidatePost(ctx context.Context, slug string) {
	Invalidate(ctx, PostKey(slug))
}

package cache

import (
	"context"
	"time"
)

const (
	PublicFeedKey   = "stories:public"
	FeaturedFeedKey = "stories:featured"
)

// The feed cache is short-lived: approve/feature invalidate it explicitly,
// but view counters mutate on every public render, so a long TTL would serve
// stale counts. Story details are never cached at all; every detail read
// moves the counter.
const FeedTTL = 1 * time.Minute

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateFeeds drops both public listing caches. Called after any
// moderation action since approve and feature both change what the public
// surfaces show.
func InvalidateFeeds(ctx context.Context) {
	Invalidate(ctx, PublicFeedKey)
	Invalidate(ctx, FeaturedFeedKey)
}

package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestPageCache(t *testing.T) *PageCache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	return NewPageCache(client)
}

func TestPageCacheRoundTrip(t *testing.T) {
	p := newTestPageCache(t)
	ctx := context.Background()

	p.Set(ctx, PageHome, 1001, []string{"a", "b"})

	var got []string
	if !p.Get(ctx, PageHome, 1001, &got) {
		t.Fatal("expected cache hit after Set")
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("cached payload mismatch: %v", got)
	}
}

func TestPageCacheMiss(t *testing.T) {
	p := newTestPageCache(t)

	var got []string
	if p.Get(context.Background(), PageHome, 1001, &got) {
		t.Fatal("expected miss on empty cache")
	}
}

func TestPageCacheInvalidate(t *testing.T) {
	p := newTestPageCache(t)
	ctx := context.Background()

	p.Set(ctx, PageHome, 1001, []string{"home"})
	p.Set(ctx, PageLibrary, 1001, []string{"library"})
	p.Set(ctx, PageDiscover, 1001, []string{"discover"})
	p.Set(ctx, PageHome, 2002, []string{"other"})

	// 点赞翻转后失效的页面组合：home + library
	p.Invalidate(ctx, 1001, PageHome, PageLibrary)

	var got []string
	if p.Get(ctx, PageHome, 1001, &got) {
		t.Fatal("home page should be invalidated")
	}
	if p.Get(ctx, PageLibrary, 1001, &got) {
		t.Fatal("library page should be invalidated")
	}
	if !p.Get(ctx, PageDiscover, 1001, &got) {
		t.Fatal("discover page should survive")
	}
	if !p.Get(ctx, PageHome, 2002, &got) {
		t.Fatal("other user's cache should survive")
	}
}

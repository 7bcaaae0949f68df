package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestUnreadStorage(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	u := NewUnreadStorage(client)
	ctx := context.Background()

	u.Incr(ctx, 1001, 7)
	u.Incr(ctx, 1001, 7)
	u.Incr(ctx, 1001, 8)

	if total := u.Total(ctx, 1001); total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}

	// 把会话 7 标记已读后，只剩会话 8 的一条
	u.Reset(ctx, 1001, 7)
	if total := u.Total(ctx, 1001); total != 1 {
		t.Fatalf("expected total 1 after reset, got %d", total)
	}

	if total := u.Total(ctx, 2002); total != 0 {
		t.Fatalf("expected 0 for untouched user, got %d", total)
	}
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 未读角标过期时间 - 14天
const unreadExpireAt = 14 * 24 * time.Hour

// UnreadStorage 私信未读角标，数据库 message_threads 为准，这里只做轻量角标
type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// Incr 某会话未读数自增
// @params uid      接收者用户ID
// @params threadId 会话ID
func (u *UnreadStorage) Incr(ctx context.Context, uid, threadId int64) {
	pipe := u.redis.Pipeline()
	pipe.HIncrBy(ctx, u.name(uid), fmt.Sprintf("%d", threadId), 1)
	pipe.Expire(ctx, u.name(uid), unreadExpireAt)
	_, _ = pipe.Exec(ctx)
}

// Reset 清掉某会话的未读角标
func (u *UnreadStorage) Reset(ctx context.Context, uid, threadId int64) {
	u.redis.HDel(ctx, u.name(uid), fmt.Sprintf("%d", threadId))
}

// Total 用户未读总数，底部角标用
func (u *UnreadStorage) Total(ctx context.Context, uid int64) int64 {
	vals, err := u.redis.HVals(ctx, u.name(uid)).Result()
	if err != nil {
		return 0
	}
	var total int64
	for _, v := range vals {
		var n int64
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			total += n
		}
	}
	return total
}

// 未读角标缓存
// msg:unread:uid -> hash(threadId -> count)
func (u *UnreadStorage) name(uid int64) string {
	return fmt.Sprintf("msg:unread:%d", uid)
}

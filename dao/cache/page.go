package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 页面缓存过期时间，订阅/收藏等状态翻转会主动失效
const pageExpireAt = 60 * time.Second

const (
	PageHome     = "home"
	PageDiscover = "discover"
	PageLibrary  = "library"
)

// PageCache 按用户缓存 home/discover/library 的渲染数据
type PageCache struct {
	redis *redis.Client
}

func NewPageCache(rds *redis.Client) *PageCache {
	return &PageCache{redis: rds}
}

// Get 读缓存，未命中或反序列化失败返回 false
func (p *PageCache) Get(ctx context.Context, page string, uid int64, dest any) bool {
	raw, err := p.redis.Get(ctx, p.name(page, uid)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set 写缓存，序列化失败直接放弃
func (p *PageCache) Set(ctx context.Context, page string, uid int64, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	p.redis.Set(ctx, p.name(page, uid), raw, pageExpireAt)
}

// Invalidate 失效该用户的若干页面缓存，订阅/收藏翻转后调用
func (p *PageCache) Invalidate(ctx context.Context, uid int64, pages ...string) {
	if len(pages) == 0 {
		return
	}
	keys := make([]string, 0, len(pages))
	for _, page := range pages {
		keys = append(keys, p.name(page, uid))
	}
	p.redis.Del(ctx, keys...)
}

// 页面缓存 key
// page:home:1001
func (p *PageCache) name(page string, uid int64) string {
	return fmt.Sprintf("page:%s:%d", page, uid)
}

// Package cache 为仓库读操作提供带版本号的透明读缓存。
//
// 缓存 key 由命名空间、方法名、参数的确定性序列化以及命名空间当前版本号组成。
// 写操作不经过缓存，也不在这里递增版本号：版本号由变更事件的监听器递增
// (见 repo/event.VersionBumpListener)，旧版本的 key 随之失效并等待过期。
package cache

import (
	"context"
	"time"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
)

// Store 是缓存后端。Get 未命中时返回 myErrors.ErrCacheMiss。
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Incr 把计数器加一并返回新值。不存在的计数器视为 1，因此首次递增得到 2。
	Incr(ctx context.Context, key string) (int64, error)

	// Tag 把 key 归入 tag，FlushTag 删除 tag 下的全部 key。
	Tag(ctx context.Context, tag, key string) error
	FlushTag(ctx context.Context, tag string) error
	SupportsTags() bool
}

// Settings 是缓存装饰器的运行参数。
type Settings struct {
	Enabled bool
	Prefix  string
	TTL     time.Duration
	UseTags bool
}

// SettingsFromConfig 由配置文件中的 CacheConfig 生成 Settings。
func SettingsFromConfig(cfg config.CacheConfig) Settings {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = constant.DefaultCachePrefix
	}
	return Settings{
		Enabled: cfg.Enabled,
		Prefix:  prefix,
		TTL:     cfg.TTL(),
		UseTags: cfg.UseTags,
	}
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// Invalidator 让某个命名空间的全部缓存失效。
type Invalidator interface {
	Bump(ctx context.Context, namespace string) error
}

// Cache 把 Store 与 Settings 组合起来，供各仓库装饰器共用。
type Cache struct {
	store    Store
	settings Settings
	logger   *zap.Logger
}

var _ Invalidator = (*Cache)(nil)

// New 创建 Cache。store 为 nil 时等同于禁用缓存。
func New(store Store, settings Settings, logger *zap.Logger) *Cache {
	if store == nil {
		settings.Enabled = false
	}
	return &Cache{store: store, settings: settings, logger: logger}
}

// Enabled 判断缓存是否生效。
func (c *Cache) Enabled() bool { return c != nil && c.settings.Enabled }

func (c *Cache) tagsEnabled() bool {
	return c.settings.UseTags && c.store.SupportsTags()
}

// Version 读取命名空间当前版本号，未设置时为 1。
func (c *Cache) Version(ctx context.Context, namespace string) (int64, error) {
	raw, err := c.store.Get(ctx, VersionKey(c.settings.Prefix, namespace))
	if errors.Is(err, myErrors.ErrCacheMiss) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || v < 1 {
		return 1, nil
	}
	return v, nil
}

// Bump 递增版本号，开启标签时顺带清理该命名空间的全部条目。
func (c *Cache) Bump(ctx context.Context, namespace string) error {
	if c == nil || c.store == nil {
		return nil
	}
	v, err := c.store.Incr(ctx, VersionKey(c.settings.Prefix, namespace))
	if err != nil {
		c.logger.Warn("递增缓存版本号失败", zap.String("namespace", namespace), zap.Error(err))
		return err
	}
	c.logger.Debug("缓存版本号已递增", zap.String("namespace", namespace), zap.Int64("version", v))

	if c.tagsEnabled() {
		if err := c.store.FlushTag(ctx, Tag(c.settings.Prefix, namespace)); err != nil {
			c.logger.Warn("按标签清理缓存失败", zap.String("namespace", namespace), zap.Error(err))
			return err
		}
	}
	return nil
}

// Remember 读穿透: 命中时解码返回，未命中时调用 fetch 并按 TTL 写入。
// 缓存被禁用或处于事务中时直接调用 fetch。
// 缓存后端出错只记录 Warn 日志，结果仍以 fetch 为准。fetch 返回的错误不被缓存。
func Remember[V any](ctx context.Context, c *Cache, namespace, method string, args []any, fetch func(ctx context.Context) (V, error)) (V, error) {
	if !c.Enabled() || mysql.InTransaction(ctx) {
		return fetch(ctx)
	}

	version, err := c.Version(ctx, namespace)
	if err != nil {
		c.logger.Warn("读取缓存版本号失败，直接查询数据库", zap.String("namespace", namespace), zap.Error(err))
		return fetch(ctx)
	}
	key := EntryKey(c.settings.Prefix, namespace, method, version, args...)

	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var cached V
		decodeErr := json.Unmarshal(raw, &cached)
		if decodeErr == nil {
			return cached, nil
		}
		c.logger.Warn("缓存数据解码失败，重新加载", zap.String("key", key), zap.Error(decodeErr))
	case !errors.Is(err, myErrors.ErrCacheMiss):
		c.logger.Warn("读取缓存失败，直接查询数据库", zap.String("key", key), zap.Error(err))
		return fetch(ctx)
	}

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("缓存数据编码失败", zap.String("key", key), zap.Error(err))
		return value, nil
	}
	if err := c.store.Set(ctx, key, data, c.settings.TTL); err != nil {
		c.logger.Warn("写入缓存失败", zap.String("key", key), zap.Error(err))
		return value, nil
	}
	if c.tagsEnabled() {
		if err := c.store.Tag(ctx, Tag(c.settings.Prefix, namespace), key); err != nil {
			c.logger.Warn("缓存 key 打标签失败", zap.String("key", key), zap.Error(err))
		}
	}
	return value, nil
}

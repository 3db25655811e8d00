package dependencies

import (
	"github.com/Xushengqwer/go-common/core"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/cache"
	"github.com/Xushengqwer/blog_service/repo/redis"
)

// InitCacheStore 按 cacheConfig.driver 选择缓存后端。缓存被禁用时返回 (nil, nil)。
// redis 驱动需要已初始化的 redisClient。
func InitCacheStore(cfg *appConfig.CacheConfig, redisClient *goredis.Client, logger *core.ZapLogger) (cache.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Enabled {
		logger.Info("仓库读缓存已禁用")
		return nil, nil
	}

	switch cfg.Driver {
	case appConfig.CacheDriverMemory:
		store, err := cache.NewMemoryStore(cfg.Memory, cfg.TTL())
		if err != nil {
			return nil, err
		}
		logger.Info("使用进程内缓存 (sturdyc)", zap.Int("capacity", cfg.Memory.Capacity), zap.Duration("ttl", cfg.TTL()))
		return store, nil
	default:
		if redisClient == nil {
			return nil, &myErrors.ConfigError{Field: "cacheConfig.driver", Message: "redis driver requires redisConfig"}
		}
		logger.Info("使用 Redis 缓存", zap.Duration("ttl", cfg.TTL()), zap.Bool("useTags", cfg.UseTags))
		return redis.NewStore(redisClient, logger.Logger()), nil
	}
}

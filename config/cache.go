package config

import (
	"time"

	"github.com/Xushengqwer/blog_service/myErrors"
)

// 缓存驱动
const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

// RedisConfig 描述 Redis 连接参数。
type RedisConfig struct {
	Address      string `mapstructure:"address" json:"address" yaml:"address"`
	Password     string `mapstructure:"password" json:"password" yaml:"password"`
	DB           int    `mapstructure:"db" json:"db" yaml:"db"`
	PoolSize     int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"`
	DialTimeout  int    `mapstructure:"dialTimeout" json:"dialTimeout" yaml:"dialTimeout"`    // 秒
	ReadTimeout  int    `mapstructure:"readTimeout" json:"readTimeout" yaml:"readTimeout"`    // 秒
	WriteTimeout int    `mapstructure:"writeTimeout" json:"writeTimeout" yaml:"writeTimeout"` // 秒
}

// CacheConfig 控制仓库读缓存。
type CacheConfig struct {
	// Enabled 为 false 时所有读操作直接穿透到数据库。
	Enabled bool `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	// Driver 取值 redis 或 memory。memory 模式下每个实例各自持有缓存，
	// 版本号变更需要通过 Kafka 广播到其他实例。
	Driver string `mapstructure:"driver" json:"driver" yaml:"driver"`
	// Prefix 是所有缓存 key 的公共前缀。
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	// TTLSeconds 是缓存条目的存活时间（秒）。
	TTLSeconds int `mapstructure:"ttlSeconds" json:"ttlSeconds" yaml:"ttlSeconds"`
	// UseTags 为 true 且驱动支持时，按命名空间给 key 打标签，版本号变更时批量清理。
	UseTags bool `mapstructure:"useTags" json:"useTags" yaml:"useTags"`

	Memory MemoryCacheConfig `mapstructure:"memory" json:"memory" yaml:"memory"`
}

// MemoryCacheConfig 是进程内缓存 (sturdyc) 的容量参数。
type MemoryCacheConfig struct {
	Capacity           int `mapstructure:"capacity" json:"capacity" yaml:"capacity"`
	NumShards          int `mapstructure:"numShards" json:"numShards" yaml:"numShards"`
	EvictionPercentage int `mapstructure:"evictionPercentage" json:"evictionPercentage" yaml:"evictionPercentage"`
}

// TTL 返回缓存存活时间，未配置时为 10 分钟。
func (c CacheConfig) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

// Validate 检查缓存配置。缓存被禁用时不做检查。
func (c CacheConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	switch c.Driver {
	case CacheDriverRedis, "":
	case CacheDriverMemory:
		if c.Memory.Capacity < 0 {
			return &myErrors.ConfigError{Field: "cacheConfig.memory.capacity", Message: "must not be negative"}
		}
		if c.Memory.EvictionPercentage < 0 || c.Memory.EvictionPercentage > 100 {
			return &myErrors.ConfigError{Field: "cacheConfig.memory.evictionPercentage", Message: "must be between 0 and 100"}
		}
	default:
		return &myErrors.ConfigError{Field: "cacheConfig.driver", Message: "must be redis or memory"}
	}
	if c.TTLSeconds < 0 {
		return &myErrors.ConfigError{Field: "cacheConfig.ttlSeconds", Message: "must not be negative"}
	}
	return nil
}

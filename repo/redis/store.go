package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/myErrors"
)

// tagSetPrefix 标签集合 key 的前缀: 集合 tag:{tag} 保存该标签下的所有缓存 key
const tagSetPrefix = "tag:"

// Store 是仓库读缓存的 Redis 实现。
// - 条目: GET / SET EX
// - 版本号: SETNX 1 + INCR，保证首次递增得到 2
// - 标签: SADD 记录成员，FlushTag 时 SMEMBERS 后一并 DEL
type Store struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStore 是 Store 的构造函数。
func NewStore(client *redis.Client, logger *zap.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// Get 读取缓存条目，key 不存在时返回 myErrors.ErrCacheMiss。
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		s.logger.Error("从 Redis 读取缓存失败", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.Error("写入 Redis 缓存失败", zap.String("key", key), zap.Duration("ttl", ttl), zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 1, 0)
		incr = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil {
		s.logger.Error("递增 Redis 计数器失败", zap.String("key", key), zap.Error(err))
		return 0, err
	}
	return incr.Val(), nil
}

func (s *Store) Tag(ctx context.Context, tag, key string) error {
	return s.client.SAdd(ctx, tagSetPrefix+tag, key).Err()
}

func (s *Store) FlushTag(ctx context.Context, tag string) error {
	setKey := tagSetPrefix + tag
	members, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.logger.Error("读取缓存标签成员失败", zap.String("tag", tag), zap.Error(err))
		return err
	}
	keys := append(members, setKey)
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("按标签删除缓存失败", zap.String("tag", tag), zap.Int("count", len(members)), zap.Error(err))
		return err
	}
	s.logger.Debug("按标签删除缓存完成", zap.String("tag", tag), zap.Int("count", len(members)))
	return nil
}

func (s *Store) SupportsTags() bool { return true }

package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// MemoryStore 是进程内缓存，条目存放在 sturdyc 中。
// sturdyc 的 TTL 在客户端级别配置，Set 的 ttl 参数被忽略。
// 版本计数器与标签集合单独保存，不参与淘汰。
type MemoryStore struct {
	client *sturdyc.Client[[]byte]

	mu       sync.Mutex
	counters map[string]int64
	tags     map[string]map[string]struct{}
}

// NewMemoryStore 校验容量参数并创建 sturdyc 客户端，未配置的参数取默认值。
func NewMemoryStore(cfg config.MemoryCacheConfig, ttl time.Duration) (*MemoryStore, error) {
	if cfg.Capacity == 0 {
		cfg.Capacity = 10000
	}
	if cfg.NumShards == 0 {
		cfg.NumShards = 256
	}
	if cfg.EvictionPercentage == 0 {
		cfg.EvictionPercentage = 10
	}
	if cfg.Capacity < 0 {
		return nil, &myErrors.ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if cfg.NumShards < 0 {
		return nil, &myErrors.ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if cfg.EvictionPercentage < 1 || cfg.EvictionPercentage > 100 {
		return nil, &myErrors.ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	if ttl <= 0 {
		return nil, &myErrors.ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}

	return &MemoryStore{
		client:   sturdyc.New[[]byte](cfg.Capacity, cfg.NumShards, ttl, cfg.EvictionPercentage),
		counters: make(map[string]int64),
		tags:     make(map[string]map[string]struct{}),
	}, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	n, ok := s.counters[key]
	s.mu.Unlock()
	if ok {
		return []byte(strconv.FormatInt(n, 10)), nil
	}

	value, ok := s.client.Get(key)
	if !ok {
		return nil, myErrors.ErrCacheMiss
	}
	return value, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.client.Set(key, value)
	return nil
}

func (s *MemoryStore) Incr(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.counters[key]
	if !ok {
		n = 1
	}
	n++
	s.counters[key] = n
	return n, nil
}

func (s *MemoryStore) Tag(_ context.Context, tag, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	members, ok := s.tags[tag]
	if !ok {
		members = make(map[string]struct{})
		s.tags[tag] = members
	}
	members[key] = struct{}{}
	return nil
}

func (s *MemoryStore) FlushTag(_ context.Context, tag string) error {
	s.mu.Lock()
	members := s.tags[tag]
	delete(s.tags, tag)
	s.mu.Unlock()

	for key := range members {
		s.client.Delete(key)
	}
	return nil
}

func (s *MemoryStore) SupportsTags() bool { return true }

// Size 返回 sturdyc 中的条目数。
func (s *MemoryStore) Size() int { return s.client.Size() }

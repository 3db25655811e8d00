package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/cache"
)

func newMemoryCache(t *testing.T, enabled, useTags bool) (*cache.Cache, *cache.MemoryStore) {
	t.Helper()
	store, err := cache.NewMemoryStore(config.MemoryCacheConfig{Capacity: 1000, NumShards: 4, EvictionPercentage: 10}, time.Minute)
	require.NoError(t, err)
	c := cache.New(store, cache.Settings{Enabled: enabled, Prefix: "test", TTL: time.Minute, UseTags: useTags}, zap.NewNop())
	return c, store
}

// brokenStore 模拟不可用的缓存后端。
type brokenStore struct {
	getErr, setErr error
	sets           int
}

func (s *brokenStore) Get(context.Context, string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return nil, myErrors.ErrCacheMiss
}

func (s *brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	s.sets++
	return s.setErr
}

func (s *brokenStore) Incr(context.Context, string) (int64, error) { return 0, errors.New("down") }
func (s *brokenStore) Tag(context.Context, string, string) error   { return nil }
func (s *brokenStore) FlushTag(context.Context, string) error      { return nil }
func (s *brokenStore) SupportsTags() bool                          { return false }

// calls 统计方法调用次数。
type calls struct {
	mu sync.Mutex
	n  map[string]int
}

func (c *calls) record(method string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == nil {
		c.n = make(map[string]int)
	}
	c.n[method]++
}

func (c *calls) count(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n[method]
}

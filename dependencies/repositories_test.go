package dependencies_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/cache"
	"github.com/Xushengqwer/blog_service/repo/event"
)

func TestInitRepositories_WritesBumpAffectedNamespaces(t *testing.T) {
	ctx := context.Background()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, entities.AutoMigrate(db))

	store, err := cache.NewMemoryStore(config.MemoryCacheConfig{}, time.Minute)
	require.NoError(t, err)
	c := cache.New(store, cache.Settings{Enabled: true, Prefix: constant.DefaultCachePrefix, TTL: time.Minute}, zap.NewNop())
	bus := event.NewBus(zap.NewNop())
	bus.Subscribe("cache-version-bump", event.VersionBumpListener(c))

	repos, err := dependencies.InitRepositories(db, c, bus, "test", zap.NewNop())
	require.NoError(t, err)

	tags, err := repos.Tags.GetActiveWithPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = repos.Tags.Create(ctx, &entities.Tag{Name: "Go", Slug: "go"})
	require.NoError(t, err)

	v, err := c.Version(ctx, constant.NamespaceTag)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
	v, err = c.Version(ctx, constant.NamespacePost)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v, "post reads preload tags")
	v, err = c.Version(ctx, constant.NamespaceUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	found, err := repos.Tags.FindBySlug(ctx, "go")
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestInitRepositories_WithoutCache(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	c := cache.New(nil, cache.Settings{Enabled: true}, zap.NewNop())
	repos, err := dependencies.InitRepositories(db, c, event.NewBus(zap.NewNop()), "test", zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, repos.Posts)
	assert.False(t, c.Enabled())
}

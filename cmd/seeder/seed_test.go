package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/cache"
	"github.com/Xushengqwer/blog_service/repo/event"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/service"
)

func TestSeed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, entities.AutoMigrate(db))

	log := zap.NewNop()
	repos, err := dependencies.InitRepositories(db, cache.New(nil, cache.Settings{}, log), event.NewBus(log), "seeder", log)
	require.NoError(t, err)

	result, err := Seed(context.Background(), repos,
		service.NewTagService(repos.Tags, log),
		service.NewPostService(repos.Posts, mysql.NewTxManager(db), nil, log),
		log, SeedOptions{Users: 2, Categories: 2, Tags: 3, Posts: 8, Concurrency: 1})
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Users: 2, Categories: 2, Tags: 3, Posts: 8}, result)

	var posts []entities.Post
	require.NoError(t, db.Find(&posts).Error)
	require.Len(t, posts, 8)
	for _, p := range posts {
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Excerpt)
		assert.Equal(t, p.Status == entities.PostStatusPublished, p.PublishedAt != nil, "post %d", p.ID)
	}
}

func TestSeed_PostsNeedAuthors(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	log := zap.NewNop()
	repos, err := dependencies.InitRepositories(db, cache.New(nil, cache.Settings{}, log), event.NewBus(log), "seeder", log)
	require.NoError(t, err)

	_, err = Seed(context.Background(), repos, nil, nil, log, SeedOptions{Posts: 1})
	assert.Error(t, err)
}

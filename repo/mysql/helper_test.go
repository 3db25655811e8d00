package mysql_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// newTestDB 打开内存 sqlite 并建表。单连接保证同一测试内看到同一个库。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, entities.AutoMigrate(db))
	return db
}

// newFKTestDB 与 newTestDB 相同，但开启外键约束，和 InnoDB 的行为一致。
func newFKTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, entities.AutoMigrate(db))
	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	require.Equal(t, 1, fk)
	return db
}

// countQueries 统计 SELECT 回调次数。
func countQueries(t *testing.T, db *gorm.DB) *atomic.Int64 {
	t.Helper()
	var n atomic.Int64
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:count_queries", func(*gorm.DB) {
		n.Add(1)
	}))
	return &n
}

func nopLogger() *zap.Logger { return zap.NewNop() }

func seedUser(t *testing.T, db *gorm.DB, name string) entities.User {
	t.Helper()
	u := entities.User{Name: name, Email: name + "@example.com", Role: "author"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) entities.Category {
	t.Helper()
	c := entities.Category{Name: name, Slug: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedTag(t *testing.T, db *gorm.DB, name string) entities.Tag {
	t.Helper()
	tag := entities.Tag{Name: name, Slug: name}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

type postOpt func(*entities.Post)

func published(at time.Time) postOpt {
	return func(p *entities.Post) {
		p.Status = entities.PostStatusPublished
		p.PublishedAt = &at
	}
}

func inCategory(id uint64) postOpt { return func(p *entities.Post) { p.CategoryID = &id } }

func createdAt(at time.Time) postOpt { return func(p *entities.Post) { p.CreatedAt = at } }

func featured() postOpt { return func(p *entities.Post) { p.IsFeatured = true } }

func views(n int64) postOpt { return func(p *entities.Post) { p.ViewsCount = n } }

func seedPost(t *testing.T, db *gorm.DB, userID uint64, slug string, opts ...postOpt) entities.Post {
	t.Helper()
	p := entities.Post{
		UserID:  userID,
		Title:   slug,
		Slug:    slug,
		Content: "body of " + slug,
		Status:  entities.PostStatusDraft,
	}
	for _, opt := range opts {
		opt(&p)
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func attachTags(t *testing.T, db *gorm.DB, postID uint64, tagIDs ...uint64) {
	t.Helper()
	for _, id := range tagIDs {
		require.NoError(t, db.Create(&entities.PostTag{PostID: postID, TagID: id}).Error)
	}
}

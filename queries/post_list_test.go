package queries_test

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

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/queries"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, entities.AutoMigrate(db))
	return db
}

func TestPostListQuery_Execute(t *testing.T) {
	db := newDB(t)
	user := entities.User{Name: "alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(&user).Error)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"charlie", "alpha", "bravo"} {
		p := entities.Post{
			UserID:    user.ID,
			Title:     title,
			Slug:      title,
			Content:   "long body",
			Excerpt:   "excerpt",
			Status:    entities.PostStatusDraft,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&p).Error)
	}

	q := queries.NewPostListQuery(mysql.NewPostRepository(db, zap.NewNop()))
	page, err := q.Execute(context.Background(),
		dto.NewPaginationDTO(1, 2),
		dto.SortDTO{Field: "title", Direction: "asc"},
		dto.PostFilterDTO{},
		[]string{"User"},
	)
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.LastPage)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "alpha", page.Items[0].Title)
	assert.Equal(t, "bravo", page.Items[1].Title)

	// 固定投影不包含正文与摘要
	assert.Empty(t, page.Items[0].Content)
	assert.Empty(t, page.Items[0].Excerpt)
	require.NotNil(t, page.Items[0].User)
	assert.Equal(t, "alice", page.Items[0].User.Name)
}

func TestPostListQuery_DescendingSortAndFilters(t *testing.T) {
	db := newDB(t)
	user := entities.User{Name: "bob", Email: "bob@example.com"}
	require.NoError(t, db.Create(&user).Error)
	now := time.Now()
	for _, p := range []entities.Post{
		{UserID: user.ID, Title: "a", Slug: "a", Content: "x", Status: entities.PostStatusDraft, ViewsCount: 5},
		{UserID: user.ID, Title: "b", Slug: "b", Content: "x", Status: entities.PostStatusPublished, PublishedAt: &now, ViewsCount: 9},
		{UserID: user.ID, Title: "c", Slug: "c", Content: "x", Status: entities.PostStatusPublished, PublishedAt: &now, ViewsCount: 1},
	} {
		require.NoError(t, db.Create(&p).Error)
	}

	q := queries.NewPostListQuery(mysql.NewPostRepository(db, zap.NewNop()))
	page, err := q.Execute(context.Background(),
		dto.NewPaginationDTO(0, 0),
		dto.NewSortDTO("views_count", "desc"),
		dto.PostFilterDTO{Status: "published"},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "b", page.Items[0].Title)
	assert.Equal(t, "c", page.Items[1].Title)
	assert.Equal(t, 15, page.PerPage)
}

func TestPostListQuery_IsReadOnly(t *testing.T) {
	q := queries.NewPostListQuery(nil)
	ctx := context.Background()

	assert.ErrorIs(t, q.Create(ctx, &entities.Post{}), myErrors.ErrReadOnlyQuery)
	assert.ErrorIs(t, q.Update(ctx, 1, map[string]any{"title": "x"}), myErrors.ErrReadOnlyQuery)
	assert.ErrorIs(t, q.Delete(ctx, 1), myErrors.ErrReadOnlyQuery)
}

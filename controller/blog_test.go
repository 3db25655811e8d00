package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/blog_service/controller"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/service"
)

// newBlogRouter 用 sqlite 上的真实仓库与服务装配前台路由。
func newBlogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, entities.AutoMigrate(db))

	log := zap.NewNop()
	posts := mysql.NewPostRepository(db, log)
	tags := mysql.NewTagRepository(db, log)
	categories := mysql.NewCategoryRepository(db, log)
	users := mysql.NewUserRepository(db, log)

	blog := controller.NewBlogController(
		service.NewHomeService(posts, users, nil),
		service.NewArticleService(posts, categories, tags, nil, log),
		service.NewCategoryService(categories),
		service.NewTagFrontService(tags),
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-User-ID"); id != "" {
			c.Set(string(constants.UserIDKey), id)
		}
		c.Next()
	})
	blog.RegisterRoutes(r.Group("/api/v1/blog"))
	return r, db
}

func seedBlog(t *testing.T, db *gorm.DB) {
	t.Helper()
	at := time.Now().Add(-time.Hour)
	alice := entities.User{Name: "alice", Email: "alice@example.com"}
	bob := entities.User{Name: "bob", Email: "bob@example.com"}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)
	news := entities.Category{Name: "News", Slug: "news"}
	require.NoError(t, db.Create(&news).Error)
	goTag := entities.Tag{Name: "Go", Slug: "go"}
	require.NoError(t, db.Create(&goTag).Error)

	posts := []entities.Post{
		{UserID: alice.ID, CategoryID: &news.ID, Title: "Alice", Slug: "alice-post", Content: "**hi**", Status: entities.PostStatusPublished, PublishedAt: &at},
		{UserID: bob.ID, CategoryID: &news.ID, Title: "Bob", Slug: "bob-post", Content: "bob", Status: entities.PostStatusPublished, PublishedAt: &at},
		{UserID: bob.ID, Title: "Draft", Slug: "draft-post", Content: "wip", Status: entities.PostStatusDraft},
	}
	require.NoError(t, db.Create(&posts).Error)
	require.NoError(t, db.Create(&entities.PostTag{PostID: posts[1].ID, TagID: goTag.ID}).Error)
}

func get(t *testing.T, r http.Handler, url string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return do(t, r, req)
}

func TestBlogArticles(t *testing.T) {
	r, db := newBlogRouter(t)
	seedBlog(t, db)

	w, env := get(t, r, "/api/v1/blog/articles?tag=go")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page vo.PostPageVO
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "bob-post", page.Items[0].Slug)

	w, _ = get(t, r, "/api/v1/blog/articles?category=missing")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = get(t, r, "/api/v1/blog/articles?sort=title")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = get(t, r, "/api/v1/blog/articles/alice-post")
	require.Equal(t, http.StatusOK, w.Code)
	var detail vo.PostDetailVO
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Contains(t, detail.ContentHTML, "<strong>hi</strong>")

	w, _ = get(t, r, "/api/v1/blog/articles/draft-post")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = get(t, r, "/api/v1/blog/articles/draft-post/related")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = get(t, r, "/api/v1/blog/articles/alice-post/related")
	require.Equal(t, http.StatusOK, w.Code)
	var related []vo.PostVO
	require.NoError(t, json.Unmarshal(env.Data, &related))
	require.Len(t, related, 1)
	assert.Equal(t, "bob-post", related[0].Slug)
}

func TestBlogHomeAndTaxonomy(t *testing.T) {
	r, db := newBlogRouter(t)
	seedBlog(t, db)

	var feed []vo.PostVO
	w, env := get(t, r, "/api/v1/blog/home/feed", "X-User-ID", "1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "bob-post", feed[0].Slug)

	w, env = get(t, r, "/api/v1/blog/home/feed")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	assert.Len(t, feed, 2)

	for _, path := range []string{"latest", "featured", "trending", "authors"} {
		w, _ = get(t, r, "/api/v1/blog/home/"+path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	var categories []vo.CategoryVO
	w, env = get(t, r, "/api/v1/blog/categories")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, int64(2), categories[0].PostsCount)

	var tags []vo.TagVO
	w, env = get(t, r, "/api/v1/blog/tags")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	require.Len(t, tags, 1)
}

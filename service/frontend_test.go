package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/cache"
	"github.com/Xushengqwer/blog_service/repo/event"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/service"
)

func newArticleService(f *fixture) service.ArticleService {
	return service.NewArticleService(f.posts, mysql.NewCategoryRepository(f.db, zap.NewNop()), f.tags, f.storage, zap.NewNop())
}

func TestArticleService_GetArticles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	news := f.category(t, "news")
	goTag := f.tag(t, "go")

	a := f.post(t, entities.Post{UserID: alice.ID, Slug: "golang-news", CategoryID: &news.ID,
		Status: entities.PostStatusPublished, PublishedAt: publishedAt(time.Hour), ViewsCount: 10})
	f.post(t, entities.Post{UserID: alice.ID, Slug: "other-news", CategoryID: &news.ID,
		Status: entities.PostStatusPublished, PublishedAt: publishedAt(2 * time.Hour), ViewsCount: 30})
	f.post(t, entities.Post{UserID: alice.ID, Slug: "golang-draft", CategoryID: &news.ID})
	require.NoError(t, f.db.Create(&entities.PostTag{PostID: a.ID, TagID: goTag.ID}).Error)
	svc := newArticleService(f)

	page, err := svc.GetArticles(ctx, dto.PostQueryFromRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total, "drafts are hidden")

	page, err = svc.GetArticles(ctx, dto.PostQueryFromRequest(map[string]string{"sort": "views_count"}))
	require.NoError(t, err)
	assert.Equal(t, "other-news", page.Items[0].Slug)
	assert.Equal(t, "alice", page.Items[0].User.Name)
	assert.Equal(t, "news", page.Items[0].Category.Name)

	page, err = svc.GetArticles(ctx, dto.PostQueryFromRequest(map[string]string{"search": "golang"}))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "golang-news", page.Items[0].Slug)

	page, err = svc.GetArticles(ctx, dto.PostQueryFromRequest(map[string]string{"tag": "go", "category": "news"}))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, a.ID, page.Items[0].ID)

	var verr *myErrors.ValidationError
	_, err = svc.GetArticles(ctx, dto.PostQueryFromRequest(map[string]string{"category": "missing"}))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category", verr.Field)
	_, err = svc.GetArticles(ctx, dto.PostQueryFromRequest(map[string]string{"tag": "missing"}))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tag", verr.Field)
}

func TestArticleService_GetArticleBySlug(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	news := f.category(t, "news")
	f.post(t, entities.Post{UserID: 1, Slug: "hello", CategoryID: &news.ID, Content: "# Hi\n\n<script>x()</script>\n\n**bold**",
		Status: entities.PostStatusPublished, PublishedAt: publishedAt(time.Hour)})
	f.post(t, entities.Post{UserID: 1, Slug: "sibling", CategoryID: &news.ID,
		Status: entities.PostStatusPublished, PublishedAt: publishedAt(2 * time.Hour)})
	f.post(t, entities.Post{UserID: 1, Slug: "secret"})
	svc := newArticleService(f)

	detail, err := svc.GetArticleBySlug(ctx, "hello")
	require.NoError(t, err)
	assert.Contains(t, detail.ContentHTML, `<h1 id="hi">Hi</h1>`)
	assert.Contains(t, detail.ContentHTML, "<strong>bold</strong>")
	assert.NotContains(t, detail.ContentHTML, "<script>")

	_, err = svc.GetArticleBySlug(ctx, "secret")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	related, err := svc.GetRelatedPosts(ctx, "hello")
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "sibling", related[0].Slug)
}

func TestHomeAndTaxonomyServices(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	news := f.category(t, "news")
	f.category(t, "empty")
	goTag := f.tag(t, "go")
	f.tag(t, "unused")

	p := f.post(t, entities.Post{UserID: bob.ID, Slug: "bob-news", CategoryID: &news.ID, IsFeatured: true,
		Status: entities.PostStatusPublished, PublishedAt: publishedAt(time.Hour)})
	f.post(t, entities.Post{UserID: alice.ID, Slug: "alice-news", CategoryID: &news.ID,
		Status: entities.PostStatusPublished, PublishedAt: publishedAt(2 * time.Hour)})
	require.NoError(t, f.db.Create(&entities.PostTag{PostID: p.ID, TagID: goTag.ID}).Error)

	home := service.NewHomeService(f.posts, mysql.NewUserRepository(f.db, zap.NewNop()), f.storage)

	latest, err := home.GetLatestPosts(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "bob-news", latest[0].Slug)

	featured, err := home.GetFeaturedPosts(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)

	trending, err := home.GetTrendingPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, trending, 2)

	feed, err := home.GetPersonalizedFeed(ctx, &alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "bob-news", feed[0].Slug)

	anonymous, err := home.GetPersonalizedFeed(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, anonymous, 2)

	authors, err := home.GetTopAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	categories, err := service.NewCategoryService(mysql.NewCategoryRepository(f.db, zap.NewNop())).GetCategoriesWithPosts(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, int64(2), categories[0].PostsCount)

	all, err := service.NewCategoryService(mysql.NewCategoryRepository(f.db, zap.NewNop())).GetAll(ctx, false, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	tags, err := service.NewTagFrontService(f.tags).GetTagsWithPosts(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "go", tags[0].Slug)
}

// 完整装配: eventful(cached(base))，写入后版本号递增，读到新数据。
func TestFullStack_WritesInvalidateCachedReads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	store, err := cache.NewMemoryStore(config.MemoryCacheConfig{}, time.Minute)
	require.NoError(t, err)
	c := cache.New(store, cache.Settings{Enabled: true, Prefix: "repo", TTL: time.Minute, UseTags: true}, zap.NewNop())

	bus := event.NewBus(zap.NewNop())
	bus.Subscribe("cache-version-bump", event.VersionBumpListener(c))

	cached, err := cache.NewCachedPostRepository(f.posts, c)
	require.NoError(t, err)
	posts, err := event.NewEventfulPostRepository(cached, bus, "test-instance")
	require.NoError(t, err)

	home := service.NewHomeService(posts, mysql.NewUserRepository(f.db, zap.NewNop()), nil)
	admin := service.NewPostService(posts, f.tx, nil, zap.NewNop())
	actions := service.NewPostActionService(posts, f.tx, nil, zap.NewNop())

	latest, err := home.GetLatestPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, latest)

	now := time.Now()
	created, err := admin.CreatePost(ctx, service.CreatePostInput{
		UserID: 1, Title: "Fresh", Content: "body", Status: entities.PostStatusPublished, PublishedAt: &now,
	})
	require.NoError(t, err)

	latest, err = home.GetLatestPosts(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 1, "create bumps the post namespace")

	_, err = actions.Unpublish(ctx, created.ID)
	require.NoError(t, err)
	latest, err = home.GetLatestPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, latest)

	version, err := c.Version(ctx, constant.NamespacePost)
	require.NoError(t, err)
	assert.Greater(t, version, int64(2))
}

// 标签云、分类列表、热门作者依赖文章数据，文章写入后也要读到新数据；
// 标签改名后，预加载标签的文章详情同样要刷新。
func TestFullStack_PostWritesInvalidateTaxonomyReads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	store, err := cache.NewMemoryStore(config.MemoryCacheConfig{}, time.Minute)
	require.NoError(t, err)
	c := cache.New(store, cache.Settings{Enabled: true, Prefix: constant.DefaultCachePrefix, TTL: time.Minute}, zap.NewNop())
	bus := event.NewBus(zap.NewNop())
	bus.Subscribe("cache-version-bump", event.VersionBumpListener(c))

	repos, err := dependencies.InitRepositories(f.db, c, bus, "test-instance", zap.NewNop())
	require.NoError(t, err)

	alice := f.user(t, "alice")
	news := f.category(t, "news")
	golang := f.tag(t, "go")
	draft := f.post(t, entities.Post{UserID: alice.ID, Slug: "tagged", CategoryID: &news.ID})
	require.NoError(t, f.db.Create(&entities.PostTag{PostID: draft.ID, TagID: golang.ID}).Error)

	tagFront := service.NewTagFrontService(repos.Tags)
	categories := service.NewCategoryService(repos.Categories)
	home := service.NewHomeService(repos.Posts, repos.Users, nil)
	articles := service.NewArticleService(repos.Posts, repos.Categories, repos.Tags, nil, zap.NewNop())
	actions := service.NewPostActionService(repos.Posts, f.tx, nil, zap.NewNop())
	admin := service.NewPostService(repos.Posts, f.tx, nil, zap.NewNop())
	tags := service.NewTagService(repos.Tags, zap.NewNop())

	cloud, err := tagFront.GetTagsWithPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, cloud)
	cats, err := categories.GetCategoriesWithPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
	authors, err := home.GetTopAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, int64(1), authors[0].PostsCount)

	_, err = actions.Publish(ctx, draft.ID)
	require.NoError(t, err)

	cloud, err = tagFront.GetTagsWithPosts(ctx)
	require.NoError(t, err)
	require.Len(t, cloud, 1, "publish refreshes the tag cloud")
	assert.Equal(t, int64(1), cloud[0].PostsCount)
	cats, err = categories.GetCategoriesWithPosts(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1, "publish refreshes the category list")

	_, err = admin.CreatePost(ctx, service.CreatePostInput{
		UserID: alice.ID, Title: "Second", Content: "body", Status: entities.PostStatusDraft,
	})
	require.NoError(t, err)
	authors, err = home.GetTopAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, int64(2), authors[0].PostsCount, "post create refreshes the author ranking")

	detail, err := articles.GetArticleBySlug(ctx, "tagged")
	require.NoError(t, err)
	require.Len(t, detail.Tags, 1)
	assert.Equal(t, "go", detail.Tags[0].Name)

	_, err = tags.UpdateTag(ctx, golang.ID, dto.TagRequest{Name: "golang", Slug: "go"})
	require.NoError(t, err)

	detail, err = articles.GetArticleBySlug(ctx, "tagged")
	require.NoError(t, err)
	require.Len(t, detail.Tags, 1)
	assert.Equal(t, "golang", detail.Tags[0].Name, "tag rename refreshes cached articles")
}

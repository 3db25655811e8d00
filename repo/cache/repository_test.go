package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/cache"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// fakePosts 只实现测试用到的方法，其余方法落到嵌入的 nil 接口上。
type fakePosts struct {
	mysql.PostRepository
	calls
	posts map[uint64]entities.Post
}

func newFakePosts() *fakePosts {
	return &fakePosts{posts: map[uint64]entities.Post{
		1: {ID: 1, Title: "one", Slug: "one", Status: entities.PostStatusPublished},
		2: {ID: 2, Title: "two", Slug: "two"},
	}}
}

func (f *fakePosts) Namespace() string { return "post" }

func (f *fakePosts) Find(_ context.Context, id uint64, _ mysql.QueryOptions) (*entities.Post, error) {
	f.record("Find")
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePosts) FindOrFail(ctx context.Context, id uint64, opts mysql.QueryOptions) (*entities.Post, error) {
	f.record("FindOrFail")
	p, _ := f.Find(ctx, id, opts)
	return p, nil
}

func (f *fakePosts) GetByIDs(_ context.Context, ids []uint64, _ mysql.QueryOptions) ([]entities.Post, error) {
	f.record("GetByIDs")
	out := make([]entities.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.posts[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePosts) Paginate(_ context.Context, req mysql.PageRequest) (*mysql.Page[entities.Post], error) {
	f.record("Paginate")
	return &mysql.Page[entities.Post]{Items: []entities.Post{f.posts[1]}, Total: 1, Page: req.Page, PerPage: req.PerPage, LastPage: 1}, nil
}

func (f *fakePosts) Update(_ context.Context, id uint64, attrs map[string]any) (*entities.Post, error) {
	f.record("Update")
	p := f.posts[id]
	if title, ok := attrs["title"].(string); ok {
		p.Title = title
	}
	f.posts[id] = p
	return &p, nil
}

func (f *fakePosts) Publish(_ context.Context, post *entities.Post) (*entities.Post, error) {
	f.record("Publish")
	return post, nil
}

func (f *fakePosts) FindBySlug(_ context.Context, slug string) (*entities.Post, error) {
	f.record("FindBySlug")
	for _, p := range f.posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakePosts) GetLatestPosts(_ context.Context, limit int) ([]entities.Post, error) {
	f.record("GetLatestPosts")
	return []entities.Post{f.posts[1]}, nil
}

func (f *fakePosts) GetPersonalizedFeed(_ context.Context, userID *uint64, _ int) ([]entities.Post, error) {
	f.record("GetPersonalizedFeed")
	return []entities.Post{f.posts[1]}, nil
}

// baseOnly 只实现通用仓库接口。
type baseOnly[T any] struct {
	mysql.Repository[T]
}

func TestCachedRepository_ReadsAreMemoised(t *testing.T) {
	ctx := context.Background()
	c, _ := newMemoryCache(t, true, false)
	inner := newFakePosts()
	repo, err := cache.NewCachedPostRepository(inner, c)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		p, err := repo.Find(ctx, 1, mysql.QueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, "one", p.Title)
	}
	assert.Equal(t, 1, inner.count("Find"))

	missing, err := repo.Find(ctx, 99, mysql.QueryOptions{})
	require.NoError(t, err)
	assert.Nil(t, missing)
	missing, err = repo.Find(ctx, 99, mysql.QueryOptions{})
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Equal(t, 2, inner.count("Find"), "absent rows are cached as null")

	_, _ = repo.GetByIDs(ctx, []uint64{1, 2, 1}, mysql.QueryOptions{})
	_, _ = repo.GetByIDs(ctx, []uint64{1, 2}, mysql.QueryOptions{})
	assert.Equal(t, 1, inner.count("GetByIDs"))

	empty, err := repo.GetByIDs(ctx, nil, mysql.QueryOptions{})
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 1, inner.count("GetByIDs"))

	_, _ = repo.FindOrFail(ctx, 1, mysql.QueryOptions{})
	_, _ = repo.FindOrFail(ctx, 1, mysql.QueryOptions{})
	assert.Equal(t, 2, inner.count("FindOrFail"))
}

func TestCachedRepository_PaginateKeyIncludesPage(t *testing.T) {
	ctx := context.Background()
	c, _ := newMemoryCache(t, true, false)
	inner := newFakePosts()
	repo, err := cache.NewCachedPostRepository(inner, c)
	require.NoError(t, err)

	page1, err := repo.Paginate(ctx, mysql.PageRequest{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 15, page1.PerPage)
	_, _ = repo.Paginate(ctx, mysql.PageRequest{Page: 1, PerPage: 15})
	assert.Equal(t, 1, inner.count("Paginate"), "defaults normalise to the same key")

	page2, err := repo.Paginate(ctx, mysql.PageRequest{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page2.Page)
	assert.Equal(t, 2, inner.count("Paginate"))
}

func TestCachedRepository_WritesPassThroughAndNeedBump(t *testing.T) {
	ctx := context.Background()
	c, _ := newMemoryCache(t, true, false)
	inner := newFakePosts()
	repo, err := cache.NewCachedPostRepository(inner, c)
	require.NoError(t, err)

	_, _ = repo.Find(ctx, 1, mysql.QueryOptions{})
	_, err = repo.Update(ctx, 1, map[string]any{"title": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.count("Update"))

	stale, _ := repo.Find(ctx, 1, mysql.QueryOptions{})
	assert.Equal(t, "one", stale.Title, "the decorator itself does not invalidate")

	require.NoError(t, c.Bump(ctx, "post"))
	fresh, _ := repo.Find(ctx, 1, mysql.QueryOptions{})
	assert.Equal(t, "renamed", fresh.Title)

	_, _ = repo.Publish(ctx, &entities.Post{ID: 2})
	_, _ = repo.Publish(ctx, &entities.Post{ID: 2})
	assert.Equal(t, 2, inner.count("Publish"))
}

func TestCachedPostRepository_CuratedReads(t *testing.T) {
	ctx := context.Background()
	c, _ := newMemoryCache(t, true, false)
	inner := newFakePosts()
	repo, err := cache.NewCachedPostRepository(inner, c)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = repo.GetLatestPosts(ctx, 6)
		require.NoError(t, err)
		_, err = repo.FindBySlug(ctx, "one")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, inner.count("GetLatestPosts"))
	assert.Equal(t, 1, inner.count("FindBySlug"))

	alice, bob := uint64(1), uint64(2)
	_, _ = repo.GetPersonalizedFeed(ctx, &alice, 6)
	_, _ = repo.GetPersonalizedFeed(ctx, &alice, 6)
	_, _ = repo.GetPersonalizedFeed(ctx, &bob, 6)
	_, _ = repo.GetPersonalizedFeed(ctx, nil, 6)
	assert.Equal(t, 3, inner.count("GetPersonalizedFeed"))

	_, err = repo.FindBySlug(ctx, "nope")
	require.Error(t, err)
	_, err = repo.FindBySlug(ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, 3, inner.count("FindBySlug"), "errors go to the inner repository every time")
}

func TestCachedRepository_DisabledBypass(t *testing.T) {
	ctx := context.Background()
	c, _ := newMemoryCache(t, false, false)
	inner := newFakePosts()
	repo, err := cache.NewCachedPostRepository(inner, c)
	require.NoError(t, err)

	_, _ = repo.GetLatestPosts(ctx, 6)
	_, _ = repo.GetLatestPosts(ctx, 6)
	assert.Equal(t, 2, inner.count("GetLatestPosts"))
}

func TestCachedRepositories_RejectWrongInner(t *testing.T) {
	c, _ := newMemoryCache(t, true, false)
	var cfgErr *myErrors.ConfigError

	_, err := cache.NewCachedPostRepository(baseOnly[entities.Post]{}, c)
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Message, "mysql.PostRepository")

	_, err = cache.NewCachedTagRepository(baseOnly[entities.Tag]{}, c)
	assert.True(t, errors.As(err, &cfgErr))

	_, err = cache.NewCachedCategoryRepository(baseOnly[entities.Category]{}, c)
	assert.True(t, errors.As(err, &cfgErr))

	_, err = cache.NewCachedUserRepository(baseOnly[entities.User]{}, c)
	assert.True(t, errors.As(err, &cfgErr))
}

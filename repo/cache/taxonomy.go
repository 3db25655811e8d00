package cache

import (
	"context"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/filter"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// CachedTagRepository 缓存前台标签云与按 slug 查询。
type CachedTagRepository struct {
	*CachedRepository[entities.Tag]
	inner mysql.TagRepository
}

var _ mysql.TagRepository = (*CachedTagRepository)(nil)

func NewCachedTagRepository(inner mysql.Repository[entities.Tag], c *Cache) (*CachedTagRepository, error) {
	tags, ok := inner.(mysql.TagRepository)
	if !ok {
		return nil, wrongInner(inner, "mysql.TagRepository")
	}
	return &CachedTagRepository{CachedRepository: NewCachedRepository[entities.Tag](inner, c), inner: tags}, nil
}

func (r *CachedTagRepository) GetActiveWithPosts(ctx context.Context) ([]entities.Tag, error) {
	return Remember(ctx, r.cache, r.Namespace(), "getActiveWithPosts", nil, r.inner.GetActiveWithPosts)
}

func (r *CachedTagRepository) FindBySlug(ctx context.Context, slug string) (*entities.Tag, error) {
	return Remember(ctx, r.cache, r.Namespace(), "findBySlug", []any{slug}, func(ctx context.Context) (*entities.Tag, error) {
		return r.inner.FindBySlug(ctx, slug)
	})
}

// FindByName 只用于写前的唯一性检查，不走缓存。
func (r *CachedTagRepository) FindByName(ctx context.Context, name string) (*entities.Tag, error) {
	return r.inner.FindByName(ctx, name)
}

// CachedCategoryRepository 缓存分类树与前台分类列表。
type CachedCategoryRepository struct {
	*CachedRepository[entities.Category]
	inner mysql.CategoryRepository
}

var _ mysql.CategoryRepository = (*CachedCategoryRepository)(nil)

func NewCachedCategoryRepository(inner mysql.Repository[entities.Category], c *Cache) (*CachedCategoryRepository, error) {
	categories, ok := inner.(mysql.CategoryRepository)
	if !ok {
		return nil, wrongInner(inner, "mysql.CategoryRepository")
	}
	return &CachedCategoryRepository{CachedRepository: NewCachedRepository[entities.Category](inner, c), inner: categories}, nil
}

func (r *CachedCategoryRepository) GetAll(ctx context.Context, onlyRoot bool, filters filter.Filters, page, perPage int) (*mysql.Page[entities.Category], error) {
	page, perPage = mysql.NormalizePage(page, perPage)
	return Remember(ctx, r.cache, r.Namespace(), "getAll", []any{onlyRoot, filters, page, perPage}, func(ctx context.Context) (*mysql.Page[entities.Category], error) {
		return r.inner.GetAll(ctx, onlyRoot, filters, page, perPage)
	})
}

func (r *CachedCategoryRepository) GetActiveWithPosts(ctx context.Context) ([]entities.Category, error) {
	return Remember(ctx, r.cache, r.Namespace(), "getActiveWithPosts", nil, r.inner.GetActiveWithPosts)
}

func (r *CachedCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	return Remember(ctx, r.cache, r.Namespace(), "findBySlug", []any{slug}, func(ctx context.Context) (*entities.Category, error) {
		return r.inner.FindBySlug(ctx, slug)
	})
}

// CachedUserRepository 缓存热门作者。
type CachedUserRepository struct {
	*CachedRepository[entities.User]
	inner mysql.UserRepository
}

var _ mysql.UserRepository = (*CachedUserRepository)(nil)

func NewCachedUserRepository(inner mysql.Repository[entities.User], c *Cache) (*CachedUserRepository, error) {
	users, ok := inner.(mysql.UserRepository)
	if !ok {
		return nil, wrongInner(inner, "mysql.UserRepository")
	}
	return &CachedUserRepository{CachedRepository: NewCachedRepository[entities.User](inner, c), inner: users}, nil
}

func (r *CachedUserRepository) GetTopAuthors(ctx context.Context, limit int) ([]entities.User, error) {
	return Remember(ctx, r.cache, r.Namespace(), "getTopAuthors", []any{limit}, func(ctx context.Context) ([]entities.User, error) {
		return r.inner.GetTopAuthors(ctx, limit)
	})
}

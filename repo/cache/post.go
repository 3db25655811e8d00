package cache

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// CachedPostRepository 缓存文章的精选查询与 slug 详情。
// Duplicate、Publish 等状态变更以及 FindForUpdate、SlugExists 直接委托，保证读到最新数据。
type CachedPostRepository struct {
	*CachedRepository[entities.Post]
	inner mysql.PostRepository
}

var _ mysql.PostRepository = (*CachedPostRepository)(nil)

// NewCachedPostRepository 要求 inner 实现 mysql.PostRepository，否则返回 ConfigError。
func NewCachedPostRepository(inner mysql.Repository[entities.Post], c *Cache) (*CachedPostRepository, error) {
	posts, ok := inner.(mysql.PostRepository)
	if !ok {
		return nil, wrongInner(inner, "mysql.PostRepository")
	}
	return &CachedPostRepository{CachedRepository: NewCachedRepository[entities.Post](inner, c), inner: posts}, nil
}

func (r *CachedPostRepository) Duplicate(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	return r.inner.Duplicate(ctx, post)
}

func (r *CachedPostRepository) Publish(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	return r.inner.Publish(ctx, post)
}

func (r *CachedPostRepository) Unpublish(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	return r.inner.Unpublish(ctx, post)
}

func (r *CachedPostRepository) Restore(ctx context.Context, ids []uint64) (int64, error) {
	return r.inner.Restore(ctx, ids)
}

func (r *CachedPostRepository) ForceDelete(ctx context.Context, ids []uint64) (int64, error) {
	return r.inner.ForceDelete(ctx, ids)
}

func (r *CachedPostRepository) GetByIDsIncludingTrashed(ctx context.Context, ids []uint64, columns []string) ([]entities.Post, error) {
	return r.inner.GetByIDsIncludingTrashed(ctx, ids, columns)
}

func (r *CachedPostRepository) FindForUpdate(ctx context.Context, id uint64) (*entities.Post, error) {
	return r.inner.FindForUpdate(ctx, id)
}

func (r *CachedPostRepository) FindBySlug(ctx context.Context, slug string) (*entities.Post, error) {
	return Remember(ctx, r.cache, r.Namespace(), "findBySlug", []any{slug}, func(ctx context.Context) (*entities.Post, error) {
		return r.inner.FindBySlug(ctx, slug)
	})
}

func (r *CachedPostRepository) SlugExists(ctx context.Context, slug string, exceptID uint64) (bool, error) {
	return r.inner.SlugExists(ctx, slug, exceptID)
}

func (r *CachedPostRepository) SyncTags(ctx context.Context, postID uint64, tagIDs []uint64) error {
	return r.inner.SyncTags(ctx, postID, tagIDs)
}

func (r *CachedPostRepository) GetLatestPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	return Remember(ctx, r.cache, r.Namespace(), "getLatestPosts", []any{limit}, func(ctx context.Context) ([]entities.Post, error) {
		return r.inner.GetLatestPosts(ctx, limit)
	})
}

func (r *CachedPostRepository) GetFeaturedPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	return Remember(ctx, r.cache, r.Namespace(), "getFeaturedPosts", []any{limit}, func(ctx context.Context) ([]entities.Post, error) {
		return r.inner.GetFeaturedPosts(ctx, limit)
	})
}

func (r *CachedPostRepository) GetTrendingPosts(ctx context.Context, limit, days int) ([]entities.Post, error) {
	return Remember(ctx, r.cache, r.Namespace(), "getTrendingPosts", []any{limit, days}, func(ctx context.Context) ([]entities.Post, error) {
		return r.inner.GetTrendingPosts(ctx, limit, days)
	})
}

func (r *CachedPostRepository) GetPersonalizedFeed(ctx context.Context, userID *uint64, limit int) ([]entities.Post, error) {
	return Remember(ctx, r.cache, r.Namespace(), "getPersonalizedFeed", []any{userID, limit}, func(ctx context.Context) ([]entities.Post, error) {
		return r.inner.GetPersonalizedFeed(ctx, userID, limit)
	})
}

func (r *CachedPostRepository) GetRelatedPosts(ctx context.Context, postID uint64, categoryID *uint64, limit int) ([]entities.Post, error) {
	return Remember(ctx, r.cache, r.Namespace(), "getRelatedPosts", []any{postID, categoryID, limit}, func(ctx context.Context) ([]entities.Post, error) {
		return r.inner.GetRelatedPosts(ctx, postID, categoryID, limit)
	})
}

func wrongInner(inner any, want string) error {
	return &myErrors.ConfigError{
		Field:   "inner",
		Message: fmt.Sprintf("%T does not implement %s", inner, want),
	}
}

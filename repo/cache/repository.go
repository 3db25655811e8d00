package cache

import (
	"context"

	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// CachedRepository 为通用仓库的 Find、GetByIDs、Paginate 加读缓存，其余方法直接委托。
type CachedRepository[T any] struct {
	inner mysql.Repository[T]
	cache *Cache
}

var _ mysql.Repository[struct{}] = (*CachedRepository[struct{}])(nil)

func NewCachedRepository[T any](inner mysql.Repository[T], c *Cache) *CachedRepository[T] {
	return &CachedRepository[T]{inner: inner, cache: c}
}

func (r *CachedRepository[T]) Namespace() string { return r.inner.Namespace() }

func (r *CachedRepository[T]) Find(ctx context.Context, id uint64, opts mysql.QueryOptions) (*T, error) {
	return Remember(ctx, r.cache, r.Namespace(), "find", []any{id, opts}, func(ctx context.Context) (*T, error) {
		return r.inner.Find(ctx, id, opts)
	})
}

func (r *CachedRepository[T]) FindOrFail(ctx context.Context, id uint64, opts mysql.QueryOptions) (*T, error) {
	return r.inner.FindOrFail(ctx, id, opts)
}

func (r *CachedRepository[T]) GetByIDs(ctx context.Context, ids []uint64, opts mysql.QueryOptions) ([]T, error) {
	ids = mysql.UniqueIDs(ids)
	if len(ids) == 0 {
		return []T{}, nil
	}
	return Remember(ctx, r.cache, r.Namespace(), "getByIds", []any{ids, opts}, func(ctx context.Context) ([]T, error) {
		return r.inner.GetByIDs(ctx, ids, opts)
	})
}

func (r *CachedRepository[T]) Paginate(ctx context.Context, req mysql.PageRequest) (*mysql.Page[T], error) {
	req.Page, req.PerPage = mysql.NormalizePage(req.Page, req.PerPage)
	return Remember(ctx, r.cache, r.Namespace(), "paginate", []any{req}, func(ctx context.Context) (*mysql.Page[T], error) {
		return r.inner.Paginate(ctx, req)
	})
}

func (r *CachedRepository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	return r.inner.Create(ctx, entity)
}

func (r *CachedRepository[T]) Update(ctx context.Context, id uint64, attrs map[string]any) (*T, error) {
	return r.inner.Update(ctx, id, attrs)
}

func (r *CachedRepository[T]) Delete(ctx context.Context, id uint64) (bool, error) {
	return r.inner.Delete(ctx, id)
}

func (r *CachedRepository[T]) DeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	return r.inner.DeleteMany(ctx, ids)
}

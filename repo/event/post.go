package event

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// EventfulPostRepository 为文章的状态流转、复制、恢复等写操作分发变更事件。
type EventfulPostRepository struct {
	*EventfulRepository[entities.Post]
	inner mysql.PostRepository
}

var _ mysql.PostRepository = (*EventfulPostRepository)(nil)

// NewEventfulPostRepository 要求 inner 实现 mysql.PostRepository，否则返回 ConfigError。
func NewEventfulPostRepository(inner mysql.Repository[entities.Post], dispatcher Dispatcher, origin string) (*EventfulPostRepository, error) {
	posts, ok := inner.(mysql.PostRepository)
	if !ok {
		return nil, wrongInner(inner, "mysql.PostRepository")
	}
	return &EventfulPostRepository{
		EventfulRepository: NewEventfulRepository[entities.Post](inner, dispatcher, origin),
		inner:              posts,
	}, nil
}

func (r *EventfulPostRepository) Duplicate(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	clone, err := r.inner.Duplicate(ctx, post)
	if err != nil {
		return nil, err
	}
	r.emit(ctx, OpDuplicate)
	return clone, nil
}

func (r *EventfulPostRepository) Publish(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	published, err := r.inner.Publish(ctx, post)
	if err != nil {
		return nil, err
	}
	r.emit(ctx, OpPublish)
	return published, nil
}

func (r *EventfulPostRepository) Unpublish(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	draft, err := r.inner.Unpublish(ctx, post)
	if err != nil {
		return nil, err
	}
	r.emit(ctx, OpUnpublish)
	return draft, nil
}

func (r *EventfulPostRepository) Restore(ctx context.Context, ids []uint64) (int64, error) {
	n, err := r.inner.Restore(ctx, ids)
	if err != nil {
		return 0, err
	}
	r.emit(ctx, OpRestore)
	return n, nil
}

func (r *EventfulPostRepository) ForceDelete(ctx context.Context, ids []uint64) (int64, error) {
	n, err := r.inner.ForceDelete(ctx, ids)
	if err != nil {
		return 0, err
	}
	r.emit(ctx, OpForceDelete)
	return n, nil
}

func (r *EventfulPostRepository) SyncTags(ctx context.Context, postID uint64, tagIDs []uint64) error {
	if err := r.inner.SyncTags(ctx, postID, tagIDs); err != nil {
		return err
	}
	r.emit(ctx, OpSyncTags)
	return nil
}

func (r *EventfulPostRepository) GetByIDsIncludingTrashed(ctx context.Context, ids []uint64, columns []string) ([]entities.Post, error) {
	return r.inner.GetByIDsIncludingTrashed(ctx, ids, columns)
}

func (r *EventfulPostRepository) FindForUpdate(ctx context.Context, id uint64) (*entities.Post, error) {
	return r.inner.FindForUpdate(ctx, id)
}

func (r *EventfulPostRepository) FindBySlug(ctx context.Context, slug string) (*entities.Post, error) {
	return r.inner.FindBySlug(ctx, slug)
}

func (r *EventfulPostRepository) SlugExists(ctx context.Context, slug string, exceptID uint64) (bool, error) {
	return r.inner.SlugExists(ctx, slug, exceptID)
}

func (r *EventfulPostRepository) GetLatestPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	return r.inner.GetLatestPosts(ctx, limit)
}

func (r *EventfulPostRepository) GetFeaturedPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	return r.inner.GetFeaturedPosts(ctx, limit)
}

func (r *EventfulPostRepository) GetTrendingPosts(ctx context.Context, limit, days int) ([]entities.Post, error) {
	return r.inner.GetTrendingPosts(ctx, limit, days)
}

func (r *EventfulPostRepository) GetPersonalizedFeed(ctx context.Context, userID *uint64, limit int) ([]entities.Post, error) {
	return r.inner.GetPersonalizedFeed(ctx, userID, limit)
}

func (r *EventfulPostRepository) GetRelatedPosts(ctx context.Context, postID uint64, categoryID *uint64, limit int) ([]entities.Post, error) {
	return r.inner.GetRelatedPosts(ctx, postID, categoryID, limit)
}

func wrongInner(inner any, want string) error {
	return &myErrors.ConfigError{
		Field:   "inner",
		Message: fmt.Sprintf("%T does not implement %s", inner, want),
	}
}

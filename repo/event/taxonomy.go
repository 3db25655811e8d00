package event

import (
	"context"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/filter"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// EventfulTagRepository 标签写操作分发事件。
type EventfulTagRepository struct {
	*EventfulRepository[entities.Tag]
	inner mysql.TagRepository
}

var _ mysql.TagRepository = (*EventfulTagRepository)(nil)

func NewEventfulTagRepository(inner mysql.Repository[entities.Tag], dispatcher Dispatcher, origin string) (*EventfulTagRepository, error) {
	tags, ok := inner.(mysql.TagRepository)
	if !ok {
		return nil, wrongInner(inner, "mysql.TagRepository")
	}
	return &EventfulTagRepository{EventfulRepository: NewEventfulRepository[entities.Tag](inner, dispatcher, origin), inner: tags}, nil
}

func (r *EventfulTagRepository) GetActiveWithPosts(ctx context.Context) ([]entities.Tag, error) {
	return r.inner.GetActiveWithPosts(ctx)
}

func (r *EventfulTagRepository) FindBySlug(ctx context.Context, slug string) (*entities.Tag, error) {
	return r.inner.FindBySlug(ctx, slug)
}

func (r *EventfulTagRepository) FindByName(ctx context.Context, name string) (*entities.Tag, error) {
	return r.inner.FindByName(ctx, name)
}

// EventfulCategoryRepository 分类写操作分发事件。
type EventfulCategoryRepository struct {
	*EventfulRepository[entities.Category]
	inner mysql.CategoryRepository
}

var _ mysql.CategoryRepository = (*EventfulCategoryRepository)(nil)

func NewEventfulCategoryRepository(inner mysql.Repository[entities.Category], dispatcher Dispatcher, origin string) (*EventfulCategoryRepository, error) {
	categories, ok := inner.(mysql.CategoryRepository)
	if !ok {
		return nil, wrongInner(inner, "mysql.CategoryRepository")
	}
	return &EventfulCategoryRepository{EventfulRepository: NewEventfulRepository[entities.Category](inner, dispatcher, origin), inner: categories}, nil
}

func (r *EventfulCategoryRepository) GetAll(ctx context.Context, onlyRoot bool, filters filter.Filters, page, perPage int) (*mysql.Page[entities.Category], error) {
	return r.inner.GetAll(ctx, onlyRoot, filters, page, perPage)
}

func (r *EventfulCategoryRepository) GetActiveWithPosts(ctx context.Context) ([]entities.Category, error) {
	return r.inner.GetActiveWithPosts(ctx)
}

func (r *EventfulCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	return r.inner.FindBySlug(ctx, slug)
}

// EventfulUserRepository 作者写操作分发事件。
type EventfulUserRepository struct {
	*EventfulRepository[entities.User]
	inner mysql.UserRepository
}

var _ mysql.UserRepository = (*EventfulUserRepository)(nil)

func NewEventfulUserRepository(inner mysql.Repository[entities.User], dispatcher Dispatcher, origin string) (*EventfulUserRepository, error) {
	users, ok := inner.(mysql.UserRepository)
	if !ok {
		return nil, wrongInner(inner, "mysql.UserRepository")
	}
	return &EventfulUserRepository{EventfulRepository: NewEventfulRepository[entities.User](inner, dispatcher, origin), inner: users}, nil
}

func (r *EventfulUserRepository) GetTopAuthors(ctx context.Context, limit int) ([]entities.User, error) {
	return r.inner.GetTopAuthors(ctx, limit)
}

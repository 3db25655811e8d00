package event

import (
	"context"

	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// EventfulRepository 在通用仓库的写操作成功后分发一次变更事件，读操作直接委托。
type EventfulRepository[T any] struct {
	inner      mysql.Repository[T]
	dispatcher Dispatcher
	origin     string
}

var _ mysql.Repository[struct{}] = (*EventfulRepository[struct{}])(nil)

func NewEventfulRepository[T any](inner mysql.Repository[T], dispatcher Dispatcher, origin string) *EventfulRepository[T] {
	return &EventfulRepository[T]{inner: inner, dispatcher: dispatcher, origin: origin}
}

// emit 在事务提交后 (不在事务中时立即) 分发事件。
func (r *EventfulRepository[T]) emit(ctx context.Context, op Op) {
	evt := NewRepositoryChanged(r.inner.Namespace(), op, r.origin)
	dispatchCtx := context.WithoutCancel(ctx)
	mysql.AfterCommit(ctx, func() {
		r.dispatcher.Dispatch(dispatchCtx, evt)
	})
}

func (r *EventfulRepository[T]) Namespace() string { return r.inner.Namespace() }

func (r *EventfulRepository[T]) Find(ctx context.Context, id uint64, opts mysql.QueryOptions) (*T, error) {
	return r.inner.Find(ctx, id, opts)
}

func (r *EventfulRepository[T]) FindOrFail(ctx context.Context, id uint64, opts mysql.QueryOptions) (*T, error) {
	return r.inner.FindOrFail(ctx, id, opts)
}

func (r *EventfulRepository[T]) GetByIDs(ctx context.Context, ids []uint64, opts mysql.QueryOptions) ([]T, error) {
	return r.inner.GetByIDs(ctx, ids, opts)
}

func (r *EventfulRepository[T]) Paginate(ctx context.Context, req mysql.PageRequest) (*mysql.Page[T], error) {
	return r.inner.Paginate(ctx, req)
}

func (r *EventfulRepository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	created, err := r.inner.Create(ctx, entity)
	if err != nil {
		return nil, err
	}
	r.emit(ctx, OpCreate)
	return created, nil
}

func (r *EventfulRepository[T]) Update(ctx context.Context, id uint64, attrs map[string]any) (*T, error) {
	updated, err := r.inner.Update(ctx, id, attrs)
	if err != nil {
		return nil, err
	}
	r.emit(ctx, OpUpdate)
	return updated, nil
}

func (r *EventfulRepository[T]) Delete(ctx context.Context, id uint64) (bool, error) {
	deleted, err := r.inner.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.emit(ctx, OpDelete)
	return deleted, nil
}

func (r *EventfulRepository[T]) DeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	n, err := r.inner.DeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	r.emit(ctx, OpDeleteMany)
	return n, nil
}

// Package event 在仓库写操作成功后分发 RepositoryChanged 事件。
// 事件在事务提交后才分发，回滚的写操作不产生事件。
package event

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Op 是触发变更的写操作名。
type Op string

const (
	OpCreate      Op = "create"
	OpUpdate      Op = "update"
	OpDelete      Op = "delete"
	OpDeleteMany  Op = "deleteMany"
	OpDuplicate   Op = "duplicate"
	OpPublish     Op = "publish"
	OpUnpublish   Op = "unpublish"
	OpRestore     Op = "restore"
	OpForceDelete Op = "forceDelete"
	OpSyncTags    Op = "syncTags"
)

// RepositoryChanged 表示某个命名空间的数据发生了变化。
// Origin 是产生事件的服务实例 id，跨实例广播时用于忽略自己发出的事件。
type RepositoryChanged struct {
	EventID   string    `json:"event_id"`
	Namespace string    `json:"namespace"`
	Op        Op        `json:"op"`
	Origin    string    `json:"origin"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRepositoryChanged 生成带新 EventID 的事件。
func NewRepositoryChanged(namespace string, op Op, origin string) RepositoryChanged {
	return RepositoryChanged{
		EventID:   uuid.New().String(),
		Namespace: namespace,
		Op:        op,
		Origin:    origin,
		Timestamp: time.Now(),
	}
}

// Dispatcher 分发事件。实现不返回错误，投递失败由实现自行记录。
type Dispatcher interface {
	Dispatch(ctx context.Context, evt RepositoryChanged)
}

// Listener 处理一个事件。
type Listener interface {
	Handle(ctx context.Context, evt RepositoryChanged) error
}

// ListenerFunc 让普通函数实现 Listener。
type ListenerFunc func(ctx context.Context, evt RepositoryChanged) error

func (f ListenerFunc) Handle(ctx context.Context, evt RepositoryChanged) error { return f(ctx, evt) }

// Bus 是进程内的同步事件总线，按注册顺序依次调用监听器。
type Bus struct {
	mu        sync.RWMutex
	listeners []namedListener
	logger    *zap.Logger
}

type namedListener struct {
	name string
	Listener
}

var _ Dispatcher = (*Bus)(nil)

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe 注册监听器，name 只用于日志。
func (b *Bus) Subscribe(name string, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, namedListener{name: name, Listener: l})
}

// Dispatch 同步调用所有监听器。监听器的错误只记录日志，不影响其他监听器。
func (b *Bus) Dispatch(ctx context.Context, evt RepositoryChanged) {
	b.mu.RLock()
	listeners := make([]namedListener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, l := range listeners {
		if err := l.Handle(ctx, evt); err != nil {
			b.logger.Error("事件监听器处理失败",
				zap.String("listener", l.name),
				zap.String("eventID", evt.EventID),
				zap.String("namespace", evt.Namespace),
				zap.String("op", string(evt.Op)),
				zap.Error(err))
		}
	}
}

package mysql

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

type txKey struct{}

// txState 保存当前事务句柄以及提交后需要执行的回调。
type txState struct {
	tx *gorm.DB

	mu          sync.Mutex
	afterCommit []func()
}

// TxManager 在 context 中传递事务，使仓库及其装饰器无需显式接收 tx 参数。
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 在事务中执行 fn。fn 内通过 ctx 调用的仓库操作共享同一事务。
// 已处于事务中时直接复用外层事务。
// 成功提交后按注册顺序执行 AfterCommit 回调；回滚时回调被丢弃。
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := stateFrom(ctx); ok {
		return fn(ctx)
	}

	state := &txState{}
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state.tx = tx
		return fn(context.WithValue(ctx, txKey{}, state))
	})
	if err != nil {
		return err
	}

	state.mu.Lock()
	callbacks := state.afterCommit
	state.afterCommit = nil
	state.mu.Unlock()
	for _, cb := range callbacks {
		cb()
	}
	return nil
}

// Conn 返回 ctx 中的事务句柄，不在事务中时返回 db。结果已绑定 ctx。
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if state, ok := stateFrom(ctx); ok {
		return state.tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// InTransaction 判断 ctx 是否携带事务。
func InTransaction(ctx context.Context) bool {
	_, ok := stateFrom(ctx)
	return ok
}

// AfterCommit 注册一个在事务提交后执行的回调；ctx 不在事务中时立即执行。
func AfterCommit(ctx context.Context, fn func()) {
	state, ok := stateFrom(ctx)
	if !ok {
		fn()
		return
	}
	state.mu.Lock()
	state.afterCommit = append(state.afterCommit, fn)
	state.mu.Unlock()
}

func stateFrom(ctx context.Context) (*txState, bool) {
	state, ok := ctx.Value(txKey{}).(*txState)
	return state, ok && state.tx != nil
}

package myErrors

import (
	"errors"
	"fmt"
)

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrReadOnlyQuery 表示在只读查询对象上尝试了写操作。正确的代码不应触发它。
var ErrReadOnlyQuery = errors.New("query: read-only query object cannot mutate data")

// RepositoryError 包装仓库层写操作 (create/update/delete/deleteMany) 的底层错误，
// 携带实体类型与操作名，便于日志与上层判断。
type RepositoryError struct {
	Op     string // create, update, delete, deleteMany ...
	Entity string // 实体命名空间，例如 post
	Err    error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository: %s %s failed: %v", e.Op, e.Entity, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// NewRepositoryError 构造一个 RepositoryError。err 为 nil 时返回 nil。
func NewRepositoryError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	return &RepositoryError{Op: op, Entity: entity, Err: err}
}

// ConfigError 表示装配阶段的配置错误，例如装饰器包装了不满足接口的仓库。
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// PostErrorKind 区分文章领域错误。
type PostErrorKind int

const (
	PostNotFound PostErrorKind = iota + 1
	PostSlugExists
	PostInvalidPublishState
)

// PostError 是文章领域的业务错误。
type PostError struct {
	Kind    PostErrorKind
	Message string
}

func (e *PostError) Error() string { return e.Message }

// Is 让 errors.Is(err, &PostError{Kind: ...}) 按 Kind 比较。
func (e *PostError) Is(target error) bool {
	t, ok := target.(*PostError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func ErrPostNotFound(id uint64) error {
	return &PostError{Kind: PostNotFound, Message: fmt.Sprintf("post %d not found", id)}
}

func ErrPostSlugExists(slug string) error {
	return &PostError{Kind: PostSlugExists, Message: fmt.Sprintf("slug %q is already taken", slug)}
}

// 发布状态与发布时间必须一致。
var (
	ErrPublishedWithoutTime = &PostError{Kind: PostInvalidPublishState, Message: "Published posts must have a publish time."}
	ErrTimeWithoutPublished = &PostError{Kind: PostInvalidPublishState, Message: "Only published posts may have a publish time."}
)

// ValidationError 表示请求参数校验失败，控制器将其映射为 400。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

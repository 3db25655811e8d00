package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/filter"
)

// QueryOptions 控制单条/批量查询的列投影与预加载关联。
type QueryOptions struct {
	Columns   []string // 为空或 ["*"] 表示全部列
	Relations []string // gorm 关联名，例如 "User", "Tags"
}

// OrderBy 是显式排序项，在筛选管道之后追加。
type OrderBy struct {
	Column string
	Desc   bool
}

// PageRequest 是分页查询参数。Page 由调用方显式传入，不从请求上下文读取。
type PageRequest struct {
	Page      int
	PerPage   int
	Columns   []string
	Filters   filter.Filters
	Relations []string
	OrderBy   []OrderBy
}

// Page 是分页结果。
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

// Repository 是针对单一实体类型的数据访问入口。缓存与事件装饰器实现同一接口。
type Repository[T any] interface {
	// Namespace 返回实体命名空间，用于缓存 key 与变更事件。
	Namespace() string

	// Find 按主键查询，不存在时返回 (nil, nil)。
	Find(ctx context.Context, id uint64, opts QueryOptions) (*T, error)

	// FindOrFail 按主键查询，不存在时返回 commonerrors.ErrRepoNotFound。
	FindOrFail(ctx context.Context, id uint64, opts QueryOptions) (*T, error)

	// GetByIDs 批量查询。ids 先去重并去掉 0，结果为空时不查库直接返回空切片。
	GetByIDs(ctx context.Context, ids []uint64, opts QueryOptions) ([]T, error)

	// Paginate 依次应用搜索 (q)、筛选管道、显式排序后分页。
	Paginate(ctx context.Context, req PageRequest) (*Page[T], error)

	// Create 插入新记录。失败时返回 *myErrors.RepositoryError。
	Create(ctx context.Context, entity *T) (*T, error)

	// Update 按主键加载、合并字段 (列名 -> 值) 并保存，返回最新记录。
	Update(ctx context.Context, id uint64, attrs map[string]any) (*T, error)

	// Delete 按主键删除 (支持软删除的实体为软删除)，返回是否有记录受影响。
	Delete(ctx context.Context, id uint64) (bool, error)

	// DeleteMany 批量删除，ids 处理同 GetByIDs，空列表直接返回 0。
	DeleteMany(ctx context.Context, ids []uint64) (int64, error)
}

// BaseRepository 是 Repository 的 gorm 实现，领域仓库通过嵌入复用它。
type BaseRepository[T any] struct {
	db        *gorm.DB
	logger    *zap.Logger
	namespace string
}

// NewBaseRepository 构造通用仓库。namespace 例如 constant.NamespacePost。
func NewBaseRepository[T any](db *gorm.DB, logger *zap.Logger, namespace string) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, logger: logger, namespace: namespace}
}

func (r *BaseRepository[T]) Namespace() string { return r.namespace }

// Query 返回绑定 ctx (及其事务) 且指定了 Model 的查询起点。
func (r *BaseRepository[T]) Query(ctx context.Context) *gorm.DB {
	return Conn(ctx, r.db).Model(new(T))
}

func (r *BaseRepository[T]) Find(ctx context.Context, id uint64, opts QueryOptions) (*T, error) {
	if id == 0 {
		return nil, nil
	}
	var entity T
	result := applyOptions(r.Query(ctx), opts).Limit(1).Find(&entity, id)
	if result.Error != nil {
		r.logger.Error("按主键查询失败", zap.String("entity", r.namespace), zap.Uint64("id", id), zap.Error(result.Error))
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindOrFail(ctx context.Context, id uint64, opts QueryOptions) (*T, error) {
	entity, err := r.Find(ctx, id, opts)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, commonerrors.ErrRepoNotFound
	}
	return entity, nil
}

func (r *BaseRepository[T]) GetByIDs(ctx context.Context, ids []uint64, opts QueryOptions) ([]T, error) {
	ids = UniqueIDs(ids)
	if len(ids) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := applyOptions(r.Query(ctx), opts).Find(&items, ids).Error; err != nil {
		r.logger.Error("批量查询失败", zap.String("entity", r.namespace), zap.Int("count", len(ids)), zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (r *BaseRepository[T]) Paginate(ctx context.Context, req PageRequest) (*Page[T], error) {
	page, perPage := NormalizePage(req.Page, req.PerPage)
	model := new(T)

	query := r.Query(ctx)
	if q := req.Filters["q"]; q != "" {
		if searchable, ok := any(model).(filter.Searchable); ok {
			query = searchable.ScopeSearch(query, q)
		}
	}
	query = filter.Apply(query, model, req.Filters)
	for _, o := range req.OrderBy {
		if o.Column == "" {
			continue
		}
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		r.logger.Error("分页计数失败", zap.String("entity", r.namespace), zap.Error(err))
		return nil, err
	}

	items := make([]T, 0, perPage)
	if total > 0 {
		found := applyOptions(query.Session(&gorm.Session{}), QueryOptions{Columns: req.Columns, Relations: req.Relations}).
			Offset((page - 1) * perPage).
			Limit(perPage).
			Find(&items)
		if found.Error != nil {
			r.logger.Error("分页查询失败", zap.String("entity", r.namespace), zap.Int("page", page), zap.Error(found.Error))
			return nil, found.Error
		}
	}

	return &Page[T]{
		Items:    items,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		LastPage: LastPage(total, perPage),
	}, nil
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := Conn(ctx, r.db).Create(entity).Error; err != nil {
		r.logger.Error("创建记录失败", zap.String("entity", r.namespace), zap.Error(err))
		return nil, myErrors.NewRepositoryError("create", r.namespace, err)
	}
	return entity, nil
}

func (r *BaseRepository[T]) Update(ctx context.Context, id uint64, attrs map[string]any) (*T, error) {
	entity, err := r.FindOrFail(ctx, id, QueryOptions{})
	if err != nil {
		return nil, myErrors.NewRepositoryError("update", r.namespace, err)
	}
	if len(attrs) > 0 {
		if err := Conn(ctx, r.db).Model(entity).Updates(attrs).Error; err != nil {
			r.logger.Error("更新记录失败", zap.String("entity", r.namespace), zap.Uint64("id", id), zap.Any("attrs", attrs), zap.Error(err))
			return nil, myErrors.NewRepositoryError("update", r.namespace, err)
		}
	}
	fresh, err := r.FindOrFail(ctx, id, QueryOptions{})
	if err != nil {
		return nil, myErrors.NewRepositoryError("update", r.namespace, err)
	}
	return fresh, nil
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint64) (bool, error) {
	entity, err := r.FindOrFail(ctx, id, QueryOptions{})
	if err != nil {
		return false, myErrors.NewRepositoryError("delete", r.namespace, err)
	}
	result := Conn(ctx, r.db).Delete(entity)
	if result.Error != nil {
		r.logger.Error("删除记录失败", zap.String("entity", r.namespace), zap.Uint64("id", id), zap.Error(result.Error))
		return false, myErrors.NewRepositoryError("delete", r.namespace, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *BaseRepository[T]) DeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	ids = UniqueIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	result := Conn(ctx, r.db).Delete(new(T), ids)
	if result.Error != nil {
		r.logger.Error("批量删除失败", zap.String("entity", r.namespace), zap.Int("count", len(ids)), zap.Error(result.Error))
		return 0, myErrors.NewRepositoryError("deleteMany", r.namespace, result.Error)
	}
	return result.RowsAffected, nil
}

// UniqueIDs 去重并去掉 0 (空 id)，保留首次出现的顺序。
func UniqueIDs(ids []uint64) []uint64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// NormalizePage 把页码修正到 >=1，每页条数修正到 1..MaxPerPage (0 表示默认值)。
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = constant.DefaultPage
	}
	switch {
	case perPage <= 0:
		perPage = constant.DefaultPerPage
	case perPage > constant.MaxPerPage:
		perPage = constant.MaxPerPage
	}
	return page, perPage
}

// LastPage 计算总页数，至少为 1。
func LastPage(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func applyOptions(db *gorm.DB, opts QueryOptions) *gorm.DB {
	if cols := selectColumns(opts.Columns); len(cols) > 0 {
		db = db.Select(cols)
	}
	for _, rel := range opts.Relations {
		db = db.Preload(rel)
	}
	return db
}

func selectColumns(columns []string) []string {
	if len(columns) == 0 || (len(columns) == 1 && columns[0] == "*") {
		return nil
	}
	return columns
}

// IsNotFound 判断错误链中是否为记录不存在。
func IsNotFound(err error) bool {
	return errors.Is(err, commonerrors.ErrRepoNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

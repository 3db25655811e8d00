package mysql

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/filter"
)

// CategoryRepository 分类仓库
type CategoryRepository interface {
	Repository[entities.Category]

	// GetAll 分页查询分类。onlyRoot 为 true 时只返回根分类并预加载子分类。
	GetAll(ctx context.Context, onlyRoot bool, filters filter.Filters, page, perPage int) (*Page[entities.Category], error)

	// GetActiveWithPosts 返回至少有一篇已发布文章的分类，带已发布文章数，按名称排序。
	GetActiveWithPosts(ctx context.Context) ([]entities.Category, error)

	// FindBySlug 按 slug 查询，不存在时返回 (nil, nil)。
	FindBySlug(ctx context.Context, slug string) (*entities.Category, error)
}

type categoryRepository struct {
	*BaseRepository[entities.Category]
	db     *gorm.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *gorm.DB, logger *zap.Logger) CategoryRepository {
	return &categoryRepository{
		BaseRepository: NewBaseRepository[entities.Category](db, logger, constant.NamespaceCategory),
		db:             db,
		logger:         logger,
	}
}

func (r *categoryRepository) GetAll(ctx context.Context, onlyRoot bool, filters filter.Filters, page, perPage int) (*Page[entities.Category], error) {
	page, perPage = NormalizePage(page, perPage)
	model := &entities.Category{}

	query := r.Query(ctx)
	if onlyRoot {
		query = query.Where("categories.parent_id IS NULL")
	}
	if q := filters["q"]; q != "" {
		query = model.ScopeSearch(query, q)
	}
	query = filter.Apply(query, model, filters)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Category, 0, perPage)
	if total > 0 {
		find := query.Session(&gorm.Session{})
		if onlyRoot {
			find = find.Preload("Children")
		}
		if err := find.Order("categories.name").
			Offset((page - 1) * perPage).Limit(perPage).
			Find(&items).Error; err != nil {
			r.logger.Error("分页查询分类失败", zap.Error(err))
			return nil, err
		}
	}
	return &Page[entities.Category]{Items: items, Total: total, Page: page, PerPage: perPage, LastPage: LastPage(total, perPage)}, nil
}

func (r *categoryRepository) GetActiveWithPosts(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	err := Conn(ctx, r.db).Model(&entities.Category{}).
		Select("categories.*, COUNT(posts.id) AS posts_count").
		Joins("JOIN posts ON posts.category_id = categories.id AND posts.status = ? AND posts.deleted_at IS NULL", entities.PostStatusPublished).
		Group("categories.id").
		Order("categories.name").
		Find(&categories).Error
	if err != nil {
		r.logger.Error("查询有文章的分类失败", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category
	result := Conn(ctx, r.db).Where("slug = ?", slug).Limit(1).Find(&category)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &category, nil
}

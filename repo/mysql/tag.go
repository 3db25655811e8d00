package mysql

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// TagRepository 标签仓库
type TagRepository interface {
	Repository[entities.Tag]

	// GetActiveWithPosts 返回至少有一篇已发布文章的标签，带已发布文章数，按名称排序。
	GetActiveWithPosts(ctx context.Context) ([]entities.Tag, error)

	// FindBySlug 按 slug 查询，不存在时返回 (nil, nil)。
	FindBySlug(ctx context.Context, slug string) (*entities.Tag, error)

	// FindByName 按名称查询，不存在时返回 (nil, nil)。
	FindByName(ctx context.Context, name string) (*entities.Tag, error)
}

type tagRepository struct {
	*BaseRepository[entities.Tag]
	db     *gorm.DB
	logger *zap.Logger
}

func NewTagRepository(db *gorm.DB, logger *zap.Logger) TagRepository {
	return &tagRepository{
		BaseRepository: NewBaseRepository[entities.Tag](db, logger, constant.NamespaceTag),
		db:             db,
		logger:         logger,
	}
}

// Delete 先解除标签与文章的关联再删除标签，两步在同一事务内。
func (r *tagRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	var deleted bool
	err := NewTxManager(r.db).Transaction(ctx, func(ctx context.Context) error {
		if err := Conn(ctx, r.db).Where("tag_id = ?", id).Delete(&entities.PostTag{}).Error; err != nil {
			r.logger.Error("解除标签关联失败", zap.Uint64("tagID", id), zap.Error(err))
			return myErrors.NewRepositoryError("delete", r.Namespace(), err)
		}
		var err error
		deleted, err = r.BaseRepository.Delete(ctx, id)
		return err
	})
	return deleted, err
}

func (r *tagRepository) DeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	ids = UniqueIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	var affected int64
	err := NewTxManager(r.db).Transaction(ctx, func(ctx context.Context) error {
		if err := Conn(ctx, r.db).Where("tag_id IN ?", ids).Delete(&entities.PostTag{}).Error; err != nil {
			r.logger.Error("解除标签关联失败", zap.Uint64s("tagIDs", ids), zap.Error(err))
			return myErrors.NewRepositoryError("deleteMany", r.Namespace(), err)
		}
		var err error
		affected, err = r.BaseRepository.DeleteMany(ctx, ids)
		return err
	})
	return affected, err
}

func (r *tagRepository) GetActiveWithPosts(ctx context.Context) ([]entities.Tag, error) {
	var tags []entities.Tag
	err := Conn(ctx, r.db).Model(&entities.Tag{}).
		Select("tags.*, COUNT(posts.id) AS posts_count").
		Joins("JOIN post_tag ON post_tag.tag_id = tags.id").
		Joins("JOIN posts ON posts.id = post_tag.post_id AND posts.status = ? AND posts.deleted_at IS NULL", entities.PostStatusPublished).
		Group("tags.id").
		Order("tags.name").
		Find(&tags).Error
	if err != nil {
		r.logger.Error("查询有文章的标签失败", zap.Error(err))
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindBySlug(ctx context.Context, slug string) (*entities.Tag, error) {
	return r.findBy(ctx, "slug", slug)
}

func (r *tagRepository) FindByName(ctx context.Context, name string) (*entities.Tag, error) {
	return r.findBy(ctx, "name", name)
}

func (r *tagRepository) findBy(ctx context.Context, column, value string) (*entities.Tag, error) {
	var tag entities.Tag
	result := Conn(ctx, r.db).Where(column+" = ?", value).Limit(1).Find(&tag)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &tag, nil
}

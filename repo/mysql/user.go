package mysql

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/entities"
)

// UserRepository 作者仓库
type UserRepository interface {
	Repository[entities.User]

	// GetTopAuthors 按文章数降序返回作者。
	GetTopAuthors(ctx context.Context, limit int) ([]entities.User, error)
}

type userRepository struct {
	*BaseRepository[entities.User]
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserRepository(db *gorm.DB, logger *zap.Logger) UserRepository {
	return &userRepository{
		BaseRepository: NewBaseRepository[entities.User](db, logger, constant.NamespaceUser),
		db:             db,
		logger:         logger,
	}
}

func (r *userRepository) GetTopAuthors(ctx context.Context, limit int) ([]entities.User, error) {
	postCount := Conn(ctx, r.db).Session(&gorm.Session{NewDB: true}).
		Model(&entities.Post{}).
		Select("COUNT(*)").
		Where("posts.user_id = users.id")

	var users []entities.User
	err := Conn(ctx, r.db).Model(&entities.User{}).
		Select("users.id, users.name, users.avatar, users.role, (?) AS posts_count", postCount).
		Order("posts_count DESC").
		Order("users.id").
		Limit(normalizeLimit(limit, constant.TopAuthorsLimit)).
		Find(&users).Error
	if err != nil {
		r.logger.Error("查询热门作者失败", zap.Error(err))
		return nil, err
	}
	return users, nil
}

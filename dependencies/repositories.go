package dependencies

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/repo/cache"
	"github.com/Xushengqwer/blog_service/repo/event"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// Repositories 是装配好的仓库：事件装饰器 -> 缓存装饰器 -> MySQL。
type Repositories struct {
	Posts      mysql.PostRepository
	Tags       mysql.TagRepository
	Categories mysql.CategoryRepository
	Users      mysql.UserRepository
}

// InitRepositories 按 eventful(cached(base)) 的顺序装配仓库。
// 写操作先经过缓存层透传到数据库，提交后由事件层分发变更事件。
func InitRepositories(db *gorm.DB, c *cache.Cache, dispatcher event.Dispatcher, origin string, logger *zap.Logger) (*Repositories, error) {
	cachedPosts, err := cache.NewCachedPostRepository(mysql.NewPostRepository(db, logger), c)
	if err != nil {
		return nil, err
	}
	posts, err := event.NewEventfulPostRepository(cachedPosts, dispatcher, origin)
	if err != nil {
		return nil, err
	}

	cachedTags, err := cache.NewCachedTagRepository(mysql.NewTagRepository(db, logger), c)
	if err != nil {
		return nil, err
	}
	tags, err := event.NewEventfulTagRepository(cachedTags, dispatcher, origin)
	if err != nil {
		return nil, err
	}

	cachedCategories, err := cache.NewCachedCategoryRepository(mysql.NewCategoryRepository(db, logger), c)
	if err != nil {
		return nil, err
	}
	categories, err := event.NewEventfulCategoryRepository(cachedCategories, dispatcher, origin)
	if err != nil {
		return nil, err
	}

	cachedUsers, err := cache.NewCachedUserRepository(mysql.NewUserRepository(db, logger), c)
	if err != nil {
		return nil, err
	}
	users, err := event.NewEventfulUserRepository(cachedUsers, dispatcher, origin)
	if err != nil {
		return nil, err
	}

	logger.Debug("仓库装配完成", zap.String("origin", origin), zap.Bool("cacheEnabled", c.Enabled()))
	return &Repositories{Posts: posts, Tags: tags, Categories: categories, Users: users}, nil
}

package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// PostRepository 定义了文章数据的持久化操作。
// 在通用仓库之上增加状态流转 (publish/unpublish)、复制、软删除恢复以及首页/前台的精选查询。
type PostRepository interface {
	Repository[entities.Post]

	// Duplicate 复制文章核心字段与标签关联为一条新草稿，返回新文章。
	// 标题追加 " (Copy)"，slug 重新生成，计数清零，发布时间清空。
	Duplicate(ctx context.Context, post *entities.Post) (*entities.Post, error)

	// Publish 把文章置为已发布。重复调用是幂等的，已有的 published_at 不会被覆盖。
	Publish(ctx context.Context, post *entities.Post) (*entities.Post, error)

	// Unpublish 把文章退回草稿并清空发布时间。
	Unpublish(ctx context.Context, post *entities.Post) (*entities.Post, error)

	// Restore 恢复软删除的文章，返回受影响行数。
	Restore(ctx context.Context, ids []uint64) (int64, error)

	// ForceDelete 物理删除文章 (包括已软删除的) 及其标签关联，返回受影响行数。
	ForceDelete(ctx context.Context, ids []uint64) (int64, error)

	// GetByIDsIncludingTrashed 批量查询，包含已软删除的文章。
	GetByIDsIncludingTrashed(ctx context.Context, ids []uint64, columns []string) ([]entities.Post, error)

	// FindForUpdate 在事务中按主键加锁读取 (SELECT ... FOR UPDATE)。
	FindForUpdate(ctx context.Context, id uint64) (*entities.Post, error)

	// FindBySlug 查询已发布文章详情，预加载作者、分类、标签。不存在时返回 ErrRepoNotFound。
	FindBySlug(ctx context.Context, slug string) (*entities.Post, error)

	// SlugExists 判断 slug 是否已被其他文章 (含软删除) 占用，exceptID 为 0 表示不排除。
	SlugExists(ctx context.Context, slug string, exceptID uint64) (bool, error)

	// SyncTags 用 tagIDs 整体替换文章的标签集合，不存在的标签 id 被忽略。
	SyncTags(ctx context.Context, postID uint64, tagIDs []uint64) error

	// GetLatestPosts 最新发布的文章。
	GetLatestPosts(ctx context.Context, limit int) ([]entities.Post, error)

	// GetFeaturedPosts 被标记为精选的已发布文章。
	GetFeaturedPosts(ctx context.Context, limit int) ([]entities.Post, error)

	// GetTrendingPosts 最近 days 天内发布、按浏览量与点赞数排序的文章。
	GetTrendingPosts(ctx context.Context, limit, days int) ([]entities.Post, error)

	// GetPersonalizedFeed 个性化信息流。userID 为 nil 时退化为最新文章。
	GetPersonalizedFeed(ctx context.Context, userID *uint64, limit int) ([]entities.Post, error)

	// GetRelatedPosts 同分类下的其他已发布文章。
	GetRelatedPosts(ctx context.Context, postID uint64, categoryID *uint64, limit int) ([]entities.Post, error)
}

// 列表卡片需要的关联
var listRelations = []string{"User", "Category"}

type postRepository struct {
	*BaseRepository[entities.Post]
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *zap.Logger) PostRepository {
	return &postRepository{
		BaseRepository: NewBaseRepository[entities.Post](db, logger, constant.NamespacePost),
		db:             db,
		logger:         logger,
		now:            time.Now,
	}
}

// Create 在通用实现之前校验发布状态与发布时间的一致性。
func (r *postRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	if post.Status == "" {
		post.Status = entities.PostStatusDraft
	}
	if err := checkPublishState(post.Status, post.PublishedAt != nil); err != nil {
		return nil, err
	}
	return r.BaseRepository.Create(ctx, post)
}

// Update 合并字段后校验发布状态与发布时间的一致性，不一致时不写库。
func (r *postRepository) Update(ctx context.Context, id uint64, attrs map[string]any) (*entities.Post, error) {
	_, hasStatus := attrs["status"]
	_, hasPublishedAt := attrs["published_at"]
	if hasStatus || hasPublishedAt {
		current, err := r.FindOrFail(ctx, id, QueryOptions{Columns: []string{"id", "status", "published_at"}})
		if err != nil {
			return nil, myErrors.NewRepositoryError("update", r.Namespace(), err)
		}
		status := current.Status
		if v, ok := attrs["status"]; ok {
			status = toStatus(v)
		}
		published := current.PublishedAt != nil
		if v, ok := attrs["published_at"]; ok {
			published = !isNilTime(v)
		}
		if err := checkPublishState(status, published); err != nil {
			return nil, err
		}
	}
	return r.BaseRepository.Update(ctx, id, attrs)
}

func (r *postRepository) Duplicate(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	if post == nil {
		return nil, myErrors.NewRepositoryError("duplicate", r.Namespace(), commonerrors.ErrRepoNotFound)
	}

	var tagIDs []uint64
	if err := Conn(ctx, r.db).Model(&entities.PostTag{}).
		Where("post_id = ?", post.ID).
		Order("tag_id").
		Pluck("tag_id", &tagIDs).Error; err != nil {
		return nil, myErrors.NewRepositoryError("duplicate", r.Namespace(), err)
	}

	title := post.Title + constant.DuplicateTitleSuffix
	newSlug, err := r.uniqueSlug(ctx, title)
	if err != nil {
		return nil, myErrors.NewRepositoryError("duplicate", r.Namespace(), err)
	}

	clone := &entities.Post{
		UserID:          post.UserID,
		CategoryID:      post.CategoryID,
		Title:           title,
		Slug:            newSlug,
		Excerpt:         post.Excerpt,
		Content:         post.Content,
		Image:           post.Image,
		MetaTitle:       post.MetaTitle,
		MetaDescription: post.MetaDescription,
		Status:          entities.PostStatusDraft,
	}

	err = NewTxManager(r.db).Transaction(ctx, func(ctx context.Context) error {
		if err := Conn(ctx, r.db).Create(clone).Error; err != nil {
			return err
		}
		return r.insertPostTags(ctx, clone.ID, tagIDs)
	})
	if err != nil {
		r.logger.Error("复制文章失败", zap.Uint64("sourceID", post.ID), zap.Error(err))
		return nil, myErrors.NewRepositoryError("duplicate", r.Namespace(), err)
	}

	r.logger.Info("文章复制成功", zap.Uint64("sourceID", post.ID), zap.Uint64("newID", clone.ID), zap.Int("tags", len(tagIDs)))
	return r.FindOrFail(ctx, clone.ID, QueryOptions{Relations: []string{"Tags"}})
}

func (r *postRepository) Publish(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	if post == nil {
		return nil, myErrors.NewRepositoryError("publish", r.Namespace(), commonerrors.ErrRepoNotFound)
	}
	current, err := r.FindOrFail(ctx, post.ID, QueryOptions{Columns: []string{"id", "status", "published_at"}})
	if err != nil {
		return nil, myErrors.NewRepositoryError("publish", r.Namespace(), err)
	}
	attrs := map[string]any{"status": entities.PostStatusPublished}
	if current.PublishedAt == nil {
		attrs["published_at"] = r.now()
	}
	return r.BaseRepository.Update(ctx, post.ID, attrs)
}

func (r *postRepository) Unpublish(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	if post == nil {
		return nil, myErrors.NewRepositoryError("unpublish", r.Namespace(), commonerrors.ErrRepoNotFound)
	}
	return r.BaseRepository.Update(ctx, post.ID, map[string]any{
		"status":       entities.PostStatusDraft,
		"published_at": nil,
	})
}

func (r *postRepository) Restore(ctx context.Context, ids []uint64) (int64, error) {
	ids = UniqueIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	result := Conn(ctx, r.db).Unscoped().Model(&entities.Post{}).
		Where("id IN ? AND deleted_at IS NOT NULL", ids).
		Update("deleted_at", nil)
	if result.Error != nil {
		r.logger.Error("恢复文章失败", zap.Uint64s("ids", ids), zap.Error(result.Error))
		return 0, myErrors.NewRepositoryError("restore", r.Namespace(), result.Error)
	}
	return result.RowsAffected, nil
}

func (r *postRepository) ForceDelete(ctx context.Context, ids []uint64) (int64, error) {
	ids = UniqueIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	var affected int64
	err := NewTxManager(r.db).Transaction(ctx, func(ctx context.Context) error {
		if err := Conn(ctx, r.db).Where("post_id IN ?", ids).Delete(&entities.PostTag{}).Error; err != nil {
			return err
		}
		result := Conn(ctx, r.db).Unscoped().Delete(&entities.Post{}, ids)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		r.logger.Error("物理删除文章失败", zap.Uint64s("ids", ids), zap.Error(err))
		return 0, myErrors.NewRepositoryError("forceDelete", r.Namespace(), err)
	}
	return affected, nil
}

func (r *postRepository) GetByIDsIncludingTrashed(ctx context.Context, ids []uint64, columns []string) ([]entities.Post, error) {
	ids = UniqueIDs(ids)
	if len(ids) == 0 {
		return []entities.Post{}, nil
	}
	var posts []entities.Post
	query := applyOptions(Conn(ctx, r.db).Unscoped().Model(&entities.Post{}), QueryOptions{Columns: columns})
	if err := query.Find(&posts, ids).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) FindForUpdate(ctx context.Context, id uint64) (*entities.Post, error) {
	query := r.Query(ctx)
	if InTransaction(ctx) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var post entities.Post
	err := query.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, commonerrors.ErrRepoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindBySlug(ctx context.Context, slug string) (*entities.Post, error) {
	var post entities.Post
	err := r.published(ctx).
		Preload("User").Preload("Category").Preload("Tags").
		Where("posts.slug = ?", slug).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, commonerrors.ErrRepoNotFound
	}
	if err != nil {
		r.logger.Error("按 slug 查询文章失败", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) SlugExists(ctx context.Context, s string, exceptID uint64) (bool, error) {
	var count int64
	query := Conn(ctx, r.db).Unscoped().Model(&entities.Post{}).Where("slug = ?", s)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) SyncTags(ctx context.Context, postID uint64, tagIDs []uint64) error {
	tagIDs = UniqueIDs(tagIDs)
	return NewTxManager(r.db).Transaction(ctx, func(ctx context.Context) error {
		if err := Conn(ctx, r.db).Where("post_id = ?", postID).Delete(&entities.PostTag{}).Error; err != nil {
			return myErrors.NewRepositoryError("syncTags", r.Namespace(), err)
		}
		if len(tagIDs) == 0 {
			return nil
		}
		var existing []uint64
		if err := Conn(ctx, r.db).Model(&entities.Tag{}).Where("id IN ?", tagIDs).Pluck("id", &existing).Error; err != nil {
			return myErrors.NewRepositoryError("syncTags", r.Namespace(), err)
		}
		if len(existing) < len(tagIDs) {
			r.logger.Warn("同步标签时忽略了不存在的标签", zap.Uint64("postID", postID), zap.Uint64s("requested", tagIDs), zap.Uint64s("existing", existing))
		}
		if err := r.insertPostTags(ctx, postID, existing); err != nil {
			return myErrors.NewRepositoryError("syncTags", r.Namespace(), err)
		}
		return nil
	})
}

func (r *postRepository) insertPostTags(ctx context.Context, postID uint64, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]entities.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, entities.PostTag{PostID: postID, TagID: tagID})
	}
	return Conn(ctx, r.db).Create(&rows).Error
}

func (r *postRepository) GetLatestPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	return r.list(ctx, r.published(ctx).Order("posts.published_at DESC").Order("posts.id DESC"), limit, constant.LatestPostsLimit)
}

func (r *postRepository) GetFeaturedPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	query := r.published(ctx).Where("posts.is_featured = ?", true).Order("posts.published_at DESC")
	return r.list(ctx, query, limit, constant.FeaturedPostsLimit)
}

func (r *postRepository) GetTrendingPosts(ctx context.Context, limit, days int) ([]entities.Post, error) {
	if days <= 0 {
		days = constant.TrendingPostsDays
	}
	since := r.now().AddDate(0, 0, -days)
	query := r.published(ctx).
		Where("posts.published_at >= ?", since).
		Order("posts.views_count DESC").
		Order("posts.likes_count DESC").
		Order("posts.id DESC")
	return r.list(ctx, query, limit, constant.TrendingPostsLimit)
}

func (r *postRepository) GetPersonalizedFeed(ctx context.Context, userID *uint64, limit int) ([]entities.Post, error) {
	if userID == nil || *userID == 0 {
		return r.GetLatestPosts(ctx, normalizeLimit(limit, constant.FeedPostsLimit))
	}

	authored := Conn(ctx, r.db).Session(&gorm.Session{NewDB: true}).
		Model(&entities.Post{}).
		Select("DISTINCT category_id").
		Where("user_id = ? AND category_id IS NOT NULL", *userID)

	query := r.published(ctx).
		Where("posts.user_id <> ?", *userID).
		Where("posts.category_id IN (?)", authored).
		Order("posts.likes_count DESC").
		Order("posts.published_at DESC")
	posts, err := r.list(ctx, query, limit, constant.FeedPostsLimit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return r.GetLatestPosts(ctx, normalizeLimit(limit, constant.FeedPostsLimit))
	}
	return posts, nil
}

func (r *postRepository) GetRelatedPosts(ctx context.Context, postID uint64, categoryID *uint64, limit int) ([]entities.Post, error) {
	query := r.published(ctx).Where("posts.id <> ?", postID)
	if categoryID != nil {
		query = query.Where("posts.category_id = ?", *categoryID)
	}
	query = query.Order("posts.published_at DESC")
	return r.list(ctx, query, limit, constant.RelatedPostsLimit)
}

// published 是已发布文章查询的起点。
func (r *postRepository) published(ctx context.Context) *gorm.DB {
	return r.Query(ctx).Where("posts.status = ?", entities.PostStatusPublished)
}

func (r *postRepository) list(ctx context.Context, query *gorm.DB, limit, fallback int) ([]entities.Post, error) {
	var posts []entities.Post
	for _, rel := range listRelations {
		query = query.Preload(rel)
	}
	if err := query.Limit(normalizeLimit(limit, fallback)).Find(&posts).Error; err != nil {
		r.logger.Error("查询文章列表失败", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

// uniqueSlug 由标题生成 slug，已被占用时追加递增后缀。
func (r *postRepository) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "post"
	}
	candidate := base
	for i := 2; ; i++ {
		exists, err := r.SlugExists(ctx, candidate, 0)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// checkPublishState 校验 published_at 非空当且仅当 status=published。
func checkPublishState(status entities.PostStatus, hasPublishedAt bool) error {
	if status == entities.PostStatusPublished && !hasPublishedAt {
		return myErrors.ErrPublishedWithoutTime
	}
	if status != entities.PostStatusPublished && hasPublishedAt {
		return myErrors.ErrTimeWithoutPublished
	}
	return nil
}

func toStatus(v any) entities.PostStatus {
	switch s := v.(type) {
	case entities.PostStatus:
		return s
	case string:
		return entities.PostStatus(s)
	}
	return ""
}

func isNilTime(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *time.Time:
		return t == nil
	}
	return false
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > constant.MaxPerPage {
		return constant.MaxPerPage
	}
	return limit
}

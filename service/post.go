package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/content"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/queries"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// PostService 后台文章的增删改查。
type PostService interface {
	// CreatePost 创建文章。
	// - slug 为空时由标题生成，已被占用时返回 PostSlugExists。
	// - 摘要为空时从正文截取。
	// - 封面图在事务之前上传，事务失败时删除已上传的图片。
	CreatePost(ctx context.Context, in CreatePostInput) (*vo.PostDetailVO, error)

	// UpdatePost 更新文章，流程同 CreatePost。
	// 上传新封面图或 RemoveImage 时，原图在提交成功后删除。TagIDs 为 nil 时不改动标签。
	UpdatePost(ctx context.Context, id uint64, in UpdatePostInput) (*vo.PostDetailVO, error)

	// DeletePost 先删除封面图再软删除文章。两步不在同一事务中，图片删除失败时文章保留。
	DeletePost(ctx context.Context, id uint64) error

	// GetPost 后台查看单篇文章，包含草稿。
	GetPost(ctx context.Context, id uint64) (*vo.PostDetailVO, error)

	// GetPosts 后台文章列表，默认按 created_at 倒序，每页 15 条。
	GetPosts(ctx context.Context, filters dto.PostFilterDTO) (*vo.PostPageVO, error)
}

// CreatePostInput 创建文章的参数
type CreatePostInput struct {
	UserID          uint64
	CategoryID      *uint64
	Title           string
	Slug            string
	Excerpt         string
	Content         string
	Status          entities.PostStatus
	PublishedAt     *time.Time
	IsFeatured      bool
	MetaTitle       string
	MetaDescription string
	TagIDs          []uint64
	Image           *ImageUpload
}

// UpdatePostInput 更新文章的参数。表单字段整体覆盖，slug 为空时保留原值。
type UpdatePostInput struct {
	CategoryID      *uint64
	Title           string
	Slug            string
	Excerpt         string
	Content         string
	Status          entities.PostStatus
	PublishedAt     *time.Time
	IsFeatured      bool
	MetaTitle       string
	MetaDescription string
	TagIDs          *[]uint64
	Image           *ImageUpload
	RemoveImage     bool
}

// 后台详情与列表需要的关联
var adminRelations = []string{"User", "Category", "Tags"}

type postService struct {
	posts    mysql.PostRepository
	postList *queries.PostListQuery
	tx       *mysql.TxManager
	storage  FileStorage
	logger   *zap.Logger
	now      func() time.Time
}

// NewPostService storage 可以为 nil，此时忽略封面图上传。
func NewPostService(posts mysql.PostRepository, tx *mysql.TxManager, storage FileStorage, logger *zap.Logger) PostService {
	return &postService{
		posts:    posts,
		postList: queries.NewPostListQuery(posts),
		tx:       tx,
		storage:  storage,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *postService) CreatePost(ctx context.Context, in CreatePostInput) (*vo.PostDetailVO, error) {
	slug, err := s.resolveSlug(ctx, in.Slug, in.Title, 0)
	if err != nil {
		return nil, err
	}

	post := &entities.Post{
		UserID:          in.UserID,
		CategoryID:      in.CategoryID,
		Title:           strings.TrimSpace(in.Title),
		Slug:            slug,
		Excerpt:         excerptOf(in.Excerpt, in.Content),
		Content:         in.Content,
		Status:          in.Status,
		PublishedAt:     in.PublishedAt,
		IsFeatured:      in.IsFeatured,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
	}

	// 1. 事务之前上传封面图
	uploaded, err := s.upload(ctx, in.Image, in.UserID)
	if err != nil {
		return nil, err
	}
	if uploaded != "" {
		post.Image = &uploaded
	}

	// 2. 创建文章与标签关联
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if _, err := s.posts.Create(ctx, post); err != nil {
			return err
		}
		if len(in.TagIDs) > 0 {
			return s.posts.SyncTags(ctx, post.ID, in.TagIDs)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建文章失败", zap.String("slug", slug), zap.Error(err))
		s.removeImage(ctx, uploaded)
		return nil, fmt.Errorf("创建文章失败: %w", err)
	}

	s.logger.Info("文章创建成功", zap.Uint64("postID", post.ID), zap.String("slug", slug))
	return s.GetPost(ctx, post.ID)
}

func (s *postService) UpdatePost(ctx context.Context, id uint64, in UpdatePostInput) (*vo.PostDetailVO, error) {
	if !in.Status.Valid() {
		return nil, &myErrors.ValidationError{Field: "status", Message: "must be draft, pending or published"}
	}
	current, err := s.posts.Find(ctx, id, mysql.QueryOptions{})
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if current == nil {
		return nil, myErrors.ErrPostNotFound(id)
	}

	slug := current.Slug
	if in.Slug != "" {
		if slug, err = s.resolveSlug(ctx, in.Slug, in.Title, id); err != nil {
			return nil, err
		}
	}

	attrs := map[string]any{
		"category_id":      in.CategoryID,
		"title":            strings.TrimSpace(in.Title),
		"slug":             slug,
		"excerpt":          excerptOf(in.Excerpt, in.Content),
		"content":          in.Content,
		"status":           in.Status,
		"published_at":     in.PublishedAt,
		"is_featured":      in.IsFeatured,
		"meta_title":       in.MetaTitle,
		"meta_description": in.MetaDescription,
	}

	uploaded, err := s.upload(ctx, in.Image, current.UserID)
	if err != nil {
		return nil, err
	}
	var obsolete string
	switch {
	case uploaded != "":
		attrs["image"] = uploaded
		obsolete = deref(current.Image)
	case in.RemoveImage:
		attrs["image"] = nil
		obsolete = deref(current.Image)
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if _, err := s.posts.Update(ctx, id, attrs); err != nil {
			return err
		}
		if in.TagIDs != nil {
			return s.posts.SyncTags(ctx, id, *in.TagIDs)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("更新文章失败", zap.Uint64("postID", id), zap.Error(err))
		s.removeImage(ctx, uploaded)
		return nil, fmt.Errorf("更新文章失败: %w", err)
	}

	// 提交成功后才删除旧图
	s.removeImage(ctx, obsolete)
	return s.GetPost(ctx, id)
}

func (s *postService) DeletePost(ctx context.Context, id uint64) error {
	post, err := s.posts.Find(ctx, id, mysql.QueryOptions{Columns: []string{"id", "image"}})
	if err != nil {
		return fmt.Errorf("查询文章失败: %w", err)
	}
	if post == nil {
		return myErrors.ErrPostNotFound(id)
	}

	if key := deref(post.Image); key != "" && s.storage != nil {
		if err := s.storage.Delete(ctx, key); err != nil {
			return fmt.Errorf("删除文章封面图失败: %w", err)
		}
	}

	if _, err := s.posts.Delete(ctx, id); err != nil {
		if mysql.IsNotFound(err) {
			return myErrors.ErrPostNotFound(id)
		}
		return fmt.Errorf("删除文章失败: %w", err)
	}
	s.logger.Info("文章已删除", zap.Uint64("postID", id))
	return nil
}

func (s *postService) GetPost(ctx context.Context, id uint64) (*vo.PostDetailVO, error) {
	post, err := s.posts.Find(ctx, id, mysql.QueryOptions{Relations: adminRelations})
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if post == nil {
		return nil, myErrors.ErrPostNotFound(id)
	}
	detail := vo.NewPostDetailVO(post, "", storageURL(s.storage))
	return &detail, nil
}

func (s *postService) GetPosts(ctx context.Context, filters dto.PostFilterDTO) (*vo.PostPageVO, error) {
	page, err := s.postList.Execute(ctx, filters.ToPagination(), filters.ToSort(), filters, adminRelations)
	if err != nil {
		return nil, fmt.Errorf("查询文章列表失败: %w", err)
	}
	out := vo.NewPostPageVO(page, storageURL(s.storage))
	return &out, nil
}

// resolveSlug 规范化 slug (为空时取标题) 并检查是否被其他文章占用。
func (s *postService) resolveSlug(ctx context.Context, raw, title string, exceptID uint64) (string, error) {
	source := strings.TrimSpace(raw)
	if source == "" {
		source = title
	}
	slug := content.Slugify(source)
	if slug == "" {
		return "", &myErrors.ValidationError{Field: "slug", Message: "cannot be derived from title"}
	}
	exists, err := s.posts.SlugExists(ctx, slug, exceptID)
	if err != nil {
		return "", fmt.Errorf("检查 slug 失败: %w", err)
	}
	if exists {
		return "", myErrors.ErrPostSlugExists(slug)
	}
	return slug, nil
}

func (s *postService) upload(ctx context.Context, img *ImageUpload, userID uint64) (string, error) {
	if img == nil || s.storage == nil {
		return "", nil
	}
	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
		s.logger.Warn("未提供封面图的内容类型，使用默认值", zap.String("filename", img.Filename))
	}
	key, err := s.storage.Store(ctx, imageObjectKey(img.Filename, userID, s.now()), img.Reader, img.Size, contentType)
	if err != nil {
		s.logger.Error("上传封面图失败", zap.String("filename", img.Filename), zap.Error(err))
		return "", fmt.Errorf("上传封面图 %s 失败: %w", img.Filename, err)
	}
	return key, nil
}

// removeImage 尽力删除，失败只记日志。请求被取消时仍然执行。
func (s *postService) removeImage(ctx context.Context, key string) {
	if key == "" || s.storage == nil {
		return
	}
	if err := s.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.logger.Warn("删除封面图失败，需要人工清理", zap.String("key", key), zap.Error(err))
	}
}

func excerptOf(excerpt, body string) string {
	if strings.TrimSpace(excerpt) != "" {
		return excerpt
	}
	return content.Excerpt(body, constant.ExcerptLength)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// notFoundAs 把仓库层的记录不存在替换为 target，其余错误原样返回。
func notFoundAs(err, target error) error {
	if errors.Is(err, target) || !mysql.IsNotFound(err) {
		return err
	}
	return target
}

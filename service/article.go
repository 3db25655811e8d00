package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/content"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/filter"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// 前台文章卡片需要的关联
var articleRelations = []string{"User", "Category"}

// ArticleService 前台文章列表与详情，只返回已发布文章。
type ArticleService interface {
	// GetArticles search 对应 q，category/tag 是 slug，找不到时返回校验错误。
	GetArticles(ctx context.Context, query dto.PostQueryDTO) (*vo.PostPageVO, error)
	// GetArticleBySlug 正文渲染为清理过的 HTML。
	GetArticleBySlug(ctx context.Context, slug string) (*vo.PostDetailVO, error)
	GetRelatedPosts(ctx context.Context, slug string) ([]vo.PostVO, error)
}

type articleService struct {
	posts      mysql.PostRepository
	categories mysql.CategoryRepository
	tags       mysql.TagRepository
	storage    FileStorage
	logger     *zap.Logger
}

func NewArticleService(posts mysql.PostRepository, categories mysql.CategoryRepository, tags mysql.TagRepository, storage FileStorage, logger *zap.Logger) ArticleService {
	return &articleService{posts: posts, categories: categories, tags: tags, storage: storage, logger: logger}
}

func (s *articleService) GetArticles(ctx context.Context, query dto.PostQueryDTO) (*vo.PostPageVO, error) {
	filters := filter.Filters{"status": string(entities.PostStatusPublished)}
	if q := query.Filters["search"]; q != "" {
		filters["q"] = q
	}

	if slug := query.Filters["category"]; slug != "" {
		category, err := s.categories.FindBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("查询分类失败: %w", err)
		}
		if category == nil {
			return nil, &myErrors.ValidationError{Field: "category", Message: "does not exist"}
		}
		filters["category_id"] = strconv.FormatUint(category.ID, 10)
	}
	if slug := query.Filters["tag"]; slug != "" {
		tag, err := s.tags.FindBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("查询标签失败: %w", err)
		}
		if tag == nil {
			return nil, &myErrors.ValidationError{Field: "tag", Message: "does not exist"}
		}
		filters["tag_id"] = strconv.FormatUint(tag.ID, 10)
	}

	sort := query.Sort()
	if !allowedFrontendSort(sort.Field) {
		sort = dto.NewSortDTO("", "")
	}

	page, err := s.posts.Paginate(ctx, mysql.PageRequest{
		Page:      query.Page,
		PerPage:   query.PerPage,
		Filters:   filters,
		Relations: articleRelations,
		OrderBy:   sort.ToOrderBy(),
	})
	if err != nil {
		return nil, fmt.Errorf("查询文章列表失败: %w", err)
	}
	out := vo.NewPostPageVO(page, storageURL(s.storage))
	return &out, nil
}

func (s *articleService) GetArticleBySlug(ctx context.Context, slug string) (*vo.PostDetailVO, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("查询文章详情失败: %w", err)
	}
	html, err := content.ToHTML(post.Content)
	if err != nil {
		s.logger.Error("渲染文章正文失败", zap.String("slug", slug), zap.Error(err))
		return nil, fmt.Errorf("渲染文章正文失败: %w", err)
	}
	detail := vo.NewPostDetailVO(post, html, storageURL(s.storage))
	return &detail, nil
}

func (s *articleService) GetRelatedPosts(ctx context.Context, slug string) ([]vo.PostVO, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("查询文章详情失败: %w", err)
	}
	related, err := s.posts.GetRelatedPosts(ctx, post.ID, post.CategoryID, constant.RelatedPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("查询相关文章失败: %w", err)
	}
	return vo.NewPostVOs(related, storageURL(s.storage)), nil
}

func allowedFrontendSort(field string) bool {
	for _, f := range dto.FrontendPostSortFields {
		if f == field {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/filter"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// CategoryService 分类查询
type CategoryService interface {
	// GetCategoriesWithPosts 前台分类列表，只包含有已发布文章的分类。
	GetCategoriesWithPosts(ctx context.Context) ([]vo.CategoryVO, error)
	// GetAll 后台分类分页，onlyRoot 时只返回根分类及其子分类。
	GetAll(ctx context.Context, onlyRoot bool, q string, page, perPage int) (*vo.CategoryPageVO, error)
}

// TagFrontService 前台标签列表
type TagFrontService interface {
	GetTagsWithPosts(ctx context.Context) ([]vo.TagVO, error)
}

type categoryService struct {
	categories mysql.CategoryRepository
}

func NewCategoryService(categories mysql.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) GetCategoriesWithPosts(ctx context.Context) ([]vo.CategoryVO, error) {
	categories, err := s.categories.GetActiveWithPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询分类列表失败: %w", err)
	}
	return vo.NewCategoryVOs(categories), nil
}

func (s *categoryService) GetAll(ctx context.Context, onlyRoot bool, q string, page, perPage int) (*vo.CategoryPageVO, error) {
	filters := filter.Filters{}
	if q != "" {
		filters["q"] = q
	}
	result, err := s.categories.GetAll(ctx, onlyRoot, filters, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	out := vo.NewCategoryPageVO(result)
	return &out, nil
}

type tagFrontService struct {
	tags mysql.TagRepository
}

func NewTagFrontService(tags mysql.TagRepository) TagFrontService {
	return &tagFrontService{tags: tags}
}

func (s *tagFrontService) GetTagsWithPosts(ctx context.Context) ([]vo.TagVO, error) {
	tags, err := s.tags.GetActiveWithPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询标签列表失败: %w", err)
	}
	return vo.NewTagVOs(tags), nil
}

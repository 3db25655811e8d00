package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/content"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// 后台标签列表的投影
var tagListColumns = []string{"id", "name", "slug", "created_at"}

// TagService 后台标签管理
type TagService interface {
	GetAll(ctx context.Context, req dto.TagIndexRequest) (*vo.TagPageVO, error)
	// CreateTag slug 为空时由名称生成。
	CreateTag(ctx context.Context, req dto.TagRequest) (*vo.TagVO, error)
	UpdateTag(ctx context.Context, id uint64, req dto.TagRequest) (*vo.TagVO, error)
	DeleteTag(ctx context.Context, id uint64) error
}

type tagService struct {
	tags   mysql.TagRepository
	logger *zap.Logger
}

func NewTagService(tags mysql.TagRepository, logger *zap.Logger) TagService {
	return &tagService{tags: tags, logger: logger}
}

func (s *tagService) GetAll(ctx context.Context, req dto.TagIndexRequest) (*vo.TagPageVO, error) {
	page, err := s.tags.Paginate(ctx, mysql.PageRequest{
		Page:    req.Page,
		PerPage: req.PerPage,
		Columns: tagListColumns,
		Filters: req.ToFilters(),
	})
	if err != nil {
		return nil, fmt.Errorf("查询标签列表失败: %w", err)
	}
	out := vo.NewTagPageVO(page)
	return &out, nil
}

func (s *tagService) CreateTag(ctx context.Context, req dto.TagRequest) (*vo.TagVO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tag := &entities.Tag{Name: strings.TrimSpace(req.Name), Slug: tagSlug(req)}
	if tag.Slug == "" {
		return nil, &myErrors.ValidationError{Field: "slug", Message: "cannot be derived from name"}
	}
	if err := s.ensureUnique(ctx, tag.Name, tag.Slug, 0); err != nil {
		return nil, err
	}
	if _, err := s.tags.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("创建标签失败: %w", err)
	}
	s.logger.Info("标签创建成功", zap.Uint64("tagID", tag.ID), zap.String("slug", tag.Slug))
	out := vo.NewTagVO(tag)
	return &out, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id uint64, req dto.TagRequest) (*vo.TagVO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	name, slug := strings.TrimSpace(req.Name), tagSlug(req)
	if slug == "" {
		return nil, &myErrors.ValidationError{Field: "slug", Message: "cannot be derived from name"}
	}
	if err := s.ensureUnique(ctx, name, slug, id); err != nil {
		return nil, err
	}
	tag, err := s.tags.Update(ctx, id, map[string]any{"name": name, "slug": slug})
	if err != nil {
		return nil, fmt.Errorf("更新标签失败: %w", err)
	}
	out := vo.NewTagVO(tag)
	return &out, nil
}

func (s *tagService) DeleteTag(ctx context.Context, id uint64) error {
	if _, err := s.tags.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除标签失败: %w", err)
	}
	s.logger.Info("标签已删除", zap.Uint64("tagID", id))
	return nil
}

// ensureUnique 名称和 slug 都有唯一索引，写入前检查，被其他标签占用时返回 ValidationError。
func (s *tagService) ensureUnique(ctx context.Context, name, slug string, exceptID uint64) error {
	byName, err := s.tags.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("检查标签名称失败: %w", err)
	}
	if byName != nil && byName.ID != exceptID {
		return &myErrors.ValidationError{Field: "name", Message: "has already been taken"}
	}
	bySlug, err := s.tags.FindBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("检查标签 slug 失败: %w", err)
	}
	if bySlug != nil && bySlug.ID != exceptID {
		return &myErrors.ValidationError{Field: "slug", Message: "has already been taken"}
	}
	return nil
}

func tagSlug(req dto.TagRequest) string {
	if s := strings.TrimSpace(req.Slug); s != "" {
		return content.Slugify(s)
	}
	return content.Slugify(req.Name)
}

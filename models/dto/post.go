package dto

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// PostRequest 后台创建/更新文章的表单 (multipart/form-data)，封面图单独作为文件字段 image 上传。
type PostRequest struct {
	Title           string     `form:"title" json:"title" binding:"required,max=255"`
	Slug            string     `form:"slug" json:"slug" binding:"omitempty,max=255"`
	Excerpt         string     `form:"excerpt" json:"excerpt"`
	Content         string     `form:"content" json:"content" binding:"required"`
	Status          string     `form:"status" json:"status" binding:"required,oneof=draft pending published"`
	PublishedAt     *time.Time `form:"published_at" json:"published_at" time_format:"2006-01-02T15:04:05Z07:00"`
	CategoryID      *uint64    `form:"category_id" json:"category_id"`
	TagIDs          []uint64   `form:"tag_ids" json:"tag_ids"`
	IsFeatured      bool       `form:"is_featured" json:"is_featured"`
	MetaTitle       string     `form:"meta_title" json:"meta_title" binding:"omitempty,max=255"`
	MetaDescription string     `form:"meta_description" json:"meta_description" binding:"omitempty,max=512"`
	// RemoveImage 仅更新时有效：删除原封面图且不上传新图
	RemoveImage bool `form:"remove_image" json:"remove_image"`
}

// Validate 检查发布状态与发布时间的一致性，这条跨字段规则 binding 标签无法表达。
// 其余字段规则由 binding 标签在 ShouldBind 时校验。
func (r PostRequest) Validate() error {
	published := entities.PostStatus(r.Status) == entities.PostStatusPublished
	if published && r.PublishedAt == nil {
		return &myErrors.ValidationError{Field: "published_at", Message: myErrors.ErrPublishedWithoutTime.Message}
	}
	if !published && r.PublishedAt != nil {
		return &myErrors.ValidationError{Field: "published_at", Message: myErrors.ErrTimeWithoutPublished.Message}
	}
	return nil
}

// BulkIDsRequest 批量操作的文章 id 列表，1..100 个正整数。
type BulkIDsRequest struct {
	IDs []uint64 `json:"ids" binding:"required,min=1,max=100,dive,min=1"`
}

// UniqueIDs 去重后的 id，保持原始顺序。
func (r BulkIDsRequest) UniqueIDs() []uint64 {
	seen := make(map[uint64]struct{}, len(r.IDs))
	out := make([]uint64, 0, len(r.IDs))
	for _, id := range r.IDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

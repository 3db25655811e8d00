package dto

import (
	"strconv"
	"strings"

	"github.com/Xushengqwer/blog_service/repo/filter"
)

// PostFilterDTO 后台文章列表的查询参数，由 c.ShouldBindQuery 绑定并按 binding 标签校验。
// id 类参数缺省时为 nil；出现时必须为正整数。
type PostFilterDTO struct {
	Q          string  `form:"q" json:"q,omitempty" binding:"omitempty,max=255"`
	Sort       string  `form:"sort" json:"sort,omitempty" binding:"omitempty,oneof=published_at created_at views_count status title"`
	Direction  string  `form:"direction" json:"direction,omitempty" binding:"omitempty,oneof=asc desc"`
	PerPage    int     `form:"per_page" json:"per_page,omitempty" binding:"omitempty,min=1,max=100"`
	Page       int     `form:"page" json:"page,omitempty" binding:"omitempty,min=1"`
	CategoryID *uint64 `form:"category_id" json:"category_id,omitempty" binding:"omitempty,min=1"`
	Status     string  `form:"status" json:"status,omitempty" binding:"omitempty,oneof=draft pending published"`
	UserID     *uint64 `form:"user_id" json:"user_id,omitempty" binding:"omitempty,min=1"`
	TagID      *uint64 `form:"tag_id" json:"tag_id,omitempty" binding:"omitempty,min=1"`
	Trashed    string  `form:"trashed" json:"trashed,omitempty" binding:"omitempty,oneof=only with"`

	// 创建时间范围，格式 2006-01-02
	CreatedAtFrom string `form:"created_at_from" json:"created_at_from,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CreatedAtTo   string `form:"created_at_to" json:"created_at_to,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// ToFilters 转为筛选管道的参数。排序与分页不在其中，由调用方单独处理。
func (d PostFilterDTO) ToFilters() filter.Filters {
	f := filter.Filters{}
	set := func(key, value string) {
		if value != "" {
			f[key] = value
		}
	}
	set("q", strings.TrimSpace(d.Q))
	set("status", d.Status)
	set("trashed", d.Trashed)
	set("created_at_from", d.CreatedAtFrom)
	set("created_at_to", d.CreatedAtTo)
	setID(f, "category_id", d.CategoryID)
	setID(f, "user_id", d.UserID)
	setID(f, "tag_id", d.TagID)
	return f
}

// ToSort 返回排序参数，未指定时按创建时间倒序。
func (d PostFilterDTO) ToSort() SortDTO {
	return NewSortDTO(d.Sort, d.Direction)
}

// ToPagination 返回分页参数，未指定时使用默认值。
func (d PostFilterDTO) ToPagination() PaginationDTO {
	return NewPaginationDTO(d.Page, d.PerPage)
}

func setID(f filter.Filters, key string, id *uint64) {
	if id != nil && *id > 0 {
		f[key] = strconv.FormatUint(*id, 10)
	}
}

package dto

import (
	"strconv"
	"strings"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/repo/filter"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// 排序默认值
const (
	DefaultSortField     = "created_at"
	DefaultSortDirection = "desc"
)

// SortDTO 排序字段与方向
type SortDTO struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// NewSortDTO 空值回落到 created_at desc。
func NewSortDTO(field, direction string) SortDTO {
	if field == "" {
		field = DefaultSortField
	}
	if direction == "" {
		direction = DefaultSortDirection
	}
	return SortDTO{Field: field, Direction: direction}
}

// Desc 判断是否降序。
func (s SortDTO) Desc() bool { return strings.EqualFold(s.Direction, "desc") }

// ToOrderBy 转为仓库的显式排序项。
func (s SortDTO) ToOrderBy() []mysql.OrderBy {
	if s.Field == "" {
		return nil
	}
	return []mysql.OrderBy{{Column: s.Field, Desc: s.Desc()}}
}

// PaginationDTO 分页参数
type PaginationDTO struct {
	PerPage int `form:"per_page" json:"per_page" binding:"omitempty,min=1,max=100"`
	Page    int `form:"page" json:"page" binding:"omitempty,min=1"`
}

// NewPaginationDTO 0 值回落到默认的第 1 页、每页 15 条，超过上限的每页条数被截断。
func NewPaginationDTO(page, perPage int) PaginationDTO {
	page, perPage = mysql.NormalizePage(page, perPage)
	return PaginationDTO{PerPage: perPage, Page: page}
}

// FrontendPostSortFields 是前台文章列表允许的排序字段，与 ArticleIndexRequest.Sort 的 oneof 一致。
var FrontendPostSortFields = []string{"created_at", "views_count", "likes_count"}

// ArticleIndexRequest 前台文章列表的查询参数，category 与 tag 是 slug。
type ArticleIndexRequest struct {
	Search    string `form:"search" json:"search,omitempty" binding:"omitempty,max=255"`
	Category  string `form:"category" json:"category,omitempty" binding:"omitempty,max=120"`
	Tag       string `form:"tag" json:"tag,omitempty" binding:"omitempty,max=120"`
	Sort      string `form:"sort" json:"sort,omitempty" binding:"omitempty,oneof=created_at views_count likes_count"`
	Direction string `form:"direction" json:"direction,omitempty" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" json:"page,omitempty" binding:"omitempty,min=1"`
	PerPage   int    `form:"per_page" json:"per_page,omitempty" binding:"omitempty,min=1,max=100"`
}

// ToMap 返回非空参数，供 PostQueryFromRequest 使用。
func (r ArticleIndexRequest) ToMap() map[string]string {
	data := map[string]string{}
	put := func(key, value string) {
		if value != "" {
			data[key] = value
		}
	}
	put("search", strings.TrimSpace(r.Search))
	put("category", r.Category)
	put("tag", r.Tag)
	put("sort", r.Sort)
	put("direction", r.Direction)
	if r.Page > 0 {
		data["page"] = strconv.Itoa(r.Page)
	}
	if r.PerPage > 0 {
		data["per_page"] = strconv.Itoa(r.PerPage)
	}
	return data
}

// PostQueryDTO 前台文章查询。Filters 保留请求中的原始键 (search/category/tag)。
type PostQueryDTO struct {
	Filters       filter.Filters `json:"filters"`
	SortField     string         `json:"sort_field"`
	SortDirection string         `json:"sort_direction"`
	PerPage       int            `json:"per_page"`
	Page          int            `json:"page"`
}

// PostQueryFromRequest 默认 created_at desc，每页 15 条，第 1 页。无法解析的数字按默认值处理。
func PostQueryFromRequest(data map[string]string) PostQueryDTO {
	q := PostQueryDTO{
		Filters:       filter.Filters{},
		SortField:     DefaultSortField,
		SortDirection: DefaultSortDirection,
		PerPage:       constant.DefaultPerPage,
		Page:          constant.DefaultPage,
	}
	for k, v := range data {
		q.Filters[k] = v
	}
	if v := data["sort"]; v != "" {
		q.SortField = v
	}
	if v := data["direction"]; v != "" {
		q.SortDirection = v
	}
	if n, err := strconv.Atoi(data["per_page"]); err == nil && n > 0 {
		q.PerPage = n
	}
	if n, err := strconv.Atoi(data["page"]); err == nil && n > 0 {
		q.Page = n
	}
	return q
}

// Sort 返回排序参数。
func (q PostQueryDTO) Sort() SortDTO {
	return NewSortDTO(q.SortField, q.SortDirection)
}

package dto

import (
	"strings"

	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/filter"
)

// TagIndexRequest 后台标签列表的查询参数
type TagIndexRequest struct {
	Q         string `form:"q" json:"q,omitempty" binding:"omitempty,max=255"`
	Sort      string `form:"sort" json:"sort,omitempty" binding:"omitempty,oneof=id name created_at"`
	Direction string `form:"direction" json:"direction,omitempty" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" json:"page,omitempty" binding:"omitempty,min=1"`
	PerPage   int    `form:"per_page" json:"per_page,omitempty" binding:"omitempty,min=1,max=100"`
}

// ToFilters 排序编码为 sort 键 ("-name" 为降序)。
func (r TagIndexRequest) ToFilters() filter.Filters {
	f := filter.Filters{}
	if q := strings.TrimSpace(r.Q); q != "" {
		f["q"] = q
	}
	if r.Sort != "" {
		f["sort"] = filter.EncodeSort(r.Sort, r.Direction == "desc")
	}
	return f
}

// TagRequest 创建/更新标签，slug 为空时由名称生成。
type TagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Slug string `json:"slug" binding:"omitempty,max=120"`
}

func (r TagRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return &myErrors.ValidationError{Field: "name", Message: "is required"}
	}
	if len([]rune(name)) > 100 {
		return &myErrors.ValidationError{Field: "name", Message: "must not exceed 100 characters"}
	}
	return nil
}

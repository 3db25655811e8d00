// Package queries 放只读的查询对象。查询对象不写库、不开事务、不发事件。
package queries

import (
	"context"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/filter"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// ReadOnly 嵌入到查询对象中，任何写操作都返回 ErrReadOnlyQuery。
type ReadOnly struct{}

func (ReadOnly) Create(context.Context, any) error { return myErrors.ErrReadOnlyQuery }

func (ReadOnly) Update(context.Context, uint64, map[string]any) error {
	return myErrors.ErrReadOnlyQuery
}

func (ReadOnly) Delete(context.Context, uint64) error { return myErrors.ErrReadOnlyQuery }

// PostListColumns 是文章列表的固定投影，不含正文。
var PostListColumns = []string{
	"id", "user_id", "category_id", "title", "slug", "status", "image",
	"views_count", "comments_count", "likes_count", "published_at", "created_at",
}

// PostListQuery 后台文章列表
type PostListQuery struct {
	ReadOnly
	repo mysql.Repository[entities.Post]
}

func NewPostListQuery(repo mysql.Repository[entities.Post]) *PostListQuery {
	return &PostListQuery{repo: repo}
}

// Execute 排序编码为 sort 筛选键 ("-field" 为降序)，交给筛选管道处理。
func (q *PostListQuery) Execute(ctx context.Context, pagination dto.PaginationDTO, sort dto.SortDTO, filters dto.PostFilterDTO, relations []string) (*mysql.Page[entities.Post], error) {
	f := filters.ToFilters()
	if sort.Field != "" {
		f["sort"] = filter.EncodeSort(sort.Field, sort.Desc())
	}
	return q.repo.Paginate(ctx, mysql.PageRequest{
		Page:      pagination.Page,
		PerPage:   pagination.PerPage,
		Columns:   PostListColumns,
		Filters:   f,
		Relations: relations,
	})
}

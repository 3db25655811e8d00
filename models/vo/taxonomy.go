package vo

import (
	"fmt"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// TagVO 标签
type TagVO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	PostsCount int64  `json:"posts_count,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// TagPageVO 后台标签分页结果
type TagPageVO struct {
	Items    []TagVO `json:"items"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PerPage  int     `json:"per_page"`
	LastPage int     `json:"last_page"`
}

// CategoryVO 分类
type CategoryVO struct {
	ID         uint64       `json:"id"`
	Name       string       `json:"name"`
	Slug       string       `json:"slug"`
	ParentID   *uint64      `json:"parent_id"`
	PostsCount int64        `json:"posts_count"`
	Children   []CategoryVO `json:"children,omitempty"`
}

// AuthorVO 首页作者榜
type AuthorVO struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	PostsCount     int64  `json:"posts_count"`
	FollowersCount int64  `json:"followers_count"`
	Avatar         string `json:"avatar"`
}

func NewTagVO(t *entities.Tag) TagVO {
	return TagVO{
		ID:         t.ID,
		Name:       t.Name,
		Slug:       t.Slug,
		PostsCount: t.PostsCount,
		CreatedAt:  formatDate(&t.CreatedAt),
	}
}

func NewTagVOs(tags []entities.Tag) []TagVO {
	out := make([]TagVO, 0, len(tags))
	for i := range tags {
		out = append(out, NewTagVO(&tags[i]))
	}
	return out
}

func NewTagPageVO(page *mysql.Page[entities.Tag]) TagPageVO {
	return TagPageVO{
		Items:    NewTagVOs(page.Items),
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
		LastPage: page.LastPage,
	}
}

// CategoryPageVO 后台分类分页结果
type CategoryPageVO struct {
	Items    []CategoryVO `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PerPage  int          `json:"per_page"`
	LastPage int          `json:"last_page"`
}

func NewCategoryPageVO(page *mysql.Page[entities.Category]) CategoryPageVO {
	return CategoryPageVO{
		Items:    NewCategoryVOs(page.Items),
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
		LastPage: page.LastPage,
	}
}

func NewCategoryVOs(categories []entities.Category) []CategoryVO {
	out := make([]CategoryVO, 0, len(categories))
	for _, c := range categories {
		item := CategoryVO{
			ID:         c.ID,
			Name:       c.Name,
			Slug:       c.Slug,
			ParentID:   c.ParentID,
			PostsCount: c.PostsCount,
		}
		if len(c.Children) > 0 {
			item.Children = NewCategoryVOs(c.Children)
		}
		out = append(out, item)
	}
	return out
}

// NewAuthorVOs 没有头像时使用 pravatar 占位图，没有角色时显示 Author。
func NewAuthorVOs(users []entities.User) []AuthorVO {
	out := make([]AuthorVO, 0, len(users))
	for _, u := range users {
		item := AuthorVO{
			ID:         u.ID,
			Name:       u.Name,
			Role:       u.Role,
			PostsCount: u.PostsCount,
			Avatar:     fmt.Sprintf("https://i.pravatar.cc/150?u=%d", u.ID),
		}
		if item.Role == "" {
			item.Role = "Author"
		}
		if u.Avatar != nil && *u.Avatar != "" {
			item.Avatar = *u.Avatar
		}
		out = append(out, item)
	}
	return out
}

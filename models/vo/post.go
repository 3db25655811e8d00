package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// URLFunc 把存储中的对象 key 转为公开访问地址。
type URLFunc func(key string) string

// 日期展示格式，例如 "May 01, 2024"
const displayDate = "Jan 02, 2006"

// AuthorBrief 列表与详情中嵌入的作者信息
type AuthorBrief struct {
	ID     uint64  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// CategoryBrief 列表与详情中嵌入的分类信息
type CategoryBrief struct {
	ID   *uint64 `json:"id"`
	Name string  `json:"name"`
}

// PostVO 文章卡片
type PostVO struct {
	ID            uint64        `json:"id"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Slug          string        `json:"slug"`
	Status        string        `json:"status"`
	User          AuthorBrief   `json:"user"`
	Category      CategoryBrief `json:"category"`
	LikesCount    int64         `json:"likes_count"`
	ViewsCount    int64         `json:"views_count"`
	CommentsCount int64         `json:"comments_count"`
	PublishedAt   string        `json:"published_at"`
	Image         *string       `json:"image"`
	ImageURL      string        `json:"image_url"`
	IsFeatured    bool          `json:"is_featured"`
	CreatedAt     string        `json:"created_at"`
	Tags          []TagVO       `json:"tags,omitempty"`
}

// PostDetailVO 文章详情，ContentHTML 是渲染并清理过的正文。
type PostDetailVO struct {
	PostVO
	Content         string `json:"content"`
	ContentHTML     string `json:"content_html"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// PostPageVO 文章分页结果
type PostPageVO struct {
	Items    []PostVO `json:"items"`
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PerPage  int      `json:"per_page"`
	LastPage int      `json:"last_page"`
}

// NewPostVO 组装文章卡片。未加载的作者显示为 Unknown，未分类显示为 Uncategorized。
func NewPostVO(p *entities.Post, url URLFunc) PostVO {
	out := PostVO{
		ID:            p.ID,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Slug:          p.Slug,
		Status:        string(p.Status),
		User:          AuthorBrief{ID: p.UserID, Name: "Unknown"},
		Category:      CategoryBrief{ID: p.CategoryID, Name: "Uncategorized"},
		LikesCount:    p.LikesCount,
		ViewsCount:    p.ViewsCount,
		CommentsCount: p.CommentsCount,
		PublishedAt:   formatDate(p.PublishedAt),
		Image:         p.Image,
		IsFeatured:    p.IsFeatured,
		CreatedAt:     formatDate(&p.CreatedAt),
	}
	if p.User != nil {
		out.User = AuthorBrief{ID: p.User.ID, Name: p.User.Name, Avatar: p.User.Avatar}
	}
	if p.Category != nil {
		out.Category = CategoryBrief{ID: &p.Category.ID, Name: p.Category.Name}
	}
	if p.Image != nil && url != nil {
		out.ImageURL = url(*p.Image)
	}
	if len(p.Tags) > 0 {
		out.Tags = NewTagVOs(p.Tags)
	}
	return out
}

// NewPostVOs 空输入返回空切片而不是 nil。
func NewPostVOs(posts []entities.Post, url URLFunc) []PostVO {
	out := make([]PostVO, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostVO(&posts[i], url))
	}
	return out
}

// NewPostDetailVO 组装文章详情。
func NewPostDetailVO(p *entities.Post, html string, url URLFunc) PostDetailVO {
	return PostDetailVO{
		PostVO:          NewPostVO(p, url),
		Content:         p.Content,
		ContentHTML:     html,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
	}
}

// NewPostPageVO 转换分页结果。
func NewPostPageVO(page *mysql.Page[entities.Post], url URLFunc) PostPageVO {
	return PostPageVO{
		Items:    NewPostVOs(page.Items, url),
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
		LastPage: page.LastPage,
	}
}

// BulkResultVO 批量操作影响的行数
type BulkResultVO struct {
	Affected int64 `json:"affected"`
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(displayDate)
}

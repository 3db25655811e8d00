package entities

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// PostStatus 是文章的生命周期状态: draft -> pending -> published，
// published 可以通过 unpublish 回到 draft。
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPending   PostStatus = "pending"
	PostStatusPublished PostStatus = "published"
)

// Valid 判断状态值是否合法。
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPending, PostStatusPublished:
		return true
	}
	return false
}

// Post 文章实体
// - 表名: posts
// - 支持软删除 (deleted_at)，slug 在表内唯一
// - 计数字段 (views/likes/comments) 由外部维护，这里只读写不计算
type Post struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	// 作者，关联 users 表
	UserID uint64 `gorm:"not null;index" json:"user_id"`
	// 分类，可为空
	CategoryID *uint64 `gorm:"index" json:"category_id"`

	Title   string  `gorm:"type:varchar(255);not null" json:"title"`
	Slug    string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Excerpt string  `gorm:"type:text" json:"excerpt"`
	Content string  `gorm:"type:longtext;not null" json:"content"`
	Image   *string `gorm:"type:varchar(512)" json:"image"` // COS 对象 key

	IsFeatured      bool   `gorm:"not null;default:false;index" json:"is_featured"`
	MetaTitle       string `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string `gorm:"type:varchar(512)" json:"meta_description"`

	// 状态，枚举 draft/pending/published
	Status PostStatus `gorm:"type:varchar(16);not null;default:draft;index" json:"status"`

	ViewsCount    int64 `gorm:"not null;default:0" json:"views_count"`
	CommentsCount int64 `gorm:"not null;default:0" json:"comments_count"`
	LikesCount    int64 `gorm:"not null;default:0" json:"likes_count"`

	// 发布时间，当且仅当 status=published 时非空
	PublishedAt *time.Time `gorm:"index" json:"published_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	// 删除文章或标签时级联删除 post_tag 中的关联行
	Tags []Tag `gorm:"many2many:post_tag;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

// IsPublished 判断文章是否处于已发布状态。
func (p *Post) IsPublished() bool { return p.Status == PostStatusPublished }

// SupportsSoftDelete 声明 posts 支持软删除。
func (*Post) SupportsSoftDelete() bool { return true }

// ScopeSearch 按标题与摘要模糊搜索。
func (*Post) ScopeSearch(db *gorm.DB, q string) *gorm.DB {
	q = strings.TrimSpace(q)
	if q == "" {
		return db
	}
	like := "%" + q + "%"
	return db.Where("(posts.title LIKE ? OR posts.excerpt LIKE ?)", like, like)
}

// ScopeFilter 处理文章支持的筛选键，未知键被忽略。
func (*Post) ScopeFilter(db *gorm.DB, key, value string) *gorm.DB {
	switch key {
	case "category_id", "user_id":
		return db.Where("posts."+key+" = ?", value)
	case "status":
		return db.Where("posts.status = ?", value)
	case "is_featured":
		return db.Where("posts.is_featured = ?", value == "1" || value == "true")
	case "tag_id":
		return db.Where("posts.id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Table("post_tag").Select("post_id").Where("tag_id = ?", value))
	}
	return db
}

// PostTag 是文章与标签的关联表，带时间戳；(post_id, tag_id) 唯一。
type PostTag struct {
	PostID    uint64 `gorm:"primaryKey"`
	TagID     uint64 `gorm:"primaryKey;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PostTag) TableName() string { return "post_tag" }

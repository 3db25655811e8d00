package entities

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Category 分类，parent_id 为空的是根分类。
type Category struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ParentID  *uint64   `gorm:"index" json:"parent_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(120);not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Children   []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	PostsCount int64      `gorm:"->;-:migration" json:"posts_count,omitempty"`
}

func (*Category) ScopeSearch(db *gorm.DB, q string) *gorm.DB {
	q = strings.TrimSpace(q)
	if q == "" {
		return db
	}
	return db.Where("categories.name LIKE ?", "%"+q+"%")
}

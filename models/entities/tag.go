package entities

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Tag 标签实体，name 与 slug 均唯一，与文章多对多。
type Tag struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Slug      string    `gorm:"type:varchar(120);not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// PostsCount 只在聚合查询时填充
	PostsCount int64 `gorm:"->;-:migration" json:"posts_count,omitempty"`
}

func (*Tag) ScopeSearch(db *gorm.DB, q string) *gorm.DB {
	q = strings.TrimSpace(q)
	if q == "" {
		return db
	}
	return db.Where("tags.name LIKE ?", "%"+q+"%")
}

func (*Tag) ScopeFilter(db *gorm.DB, key, value string) *gorm.DB {
	switch key {
	case "name", "slug":
		return db.Where("tags."+key+" = ?", value)
	}
	return db
}

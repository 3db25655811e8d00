package entities

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User 作者
type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(191);not null;uniqueIndex" json:"email"`
	Avatar    *string   `gorm:"type:varchar(512)" json:"avatar"`
	Role      string    `gorm:"type:varchar(50);not null;default:author" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PostsCount int64 `gorm:"->;-:migration" json:"posts_count,omitempty"`
}

func (*User) ScopeSearch(db *gorm.DB, q string) *gorm.DB {
	q = strings.TrimSpace(q)
	if q == "" {
		return db
	}
	like := "%" + q + "%"
	return db.Where("(users.name LIKE ? OR users.email LIKE ?)", like, like)
}

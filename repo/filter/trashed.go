package filter

import "gorm.io/gorm"

// trashed 参数取值
const (
	TrashedWith = "with"
	TrashedOnly = "only"
)

// Trashed 只对支持软删除的实体生效:
// with 同时包含已删除记录，only 只返回已删除记录，其余取值 (含缺省) 只返回未删除记录。
func Trashed(db *gorm.DB, model any, f Filters) *gorm.DB {
	sd, ok := model.(SoftDeletable)
	if !ok || !sd.SupportsSoftDelete() {
		return db
	}
	switch f["trashed"] {
	case TrashedWith:
		return db.Unscoped()
	case TrashedOnly:
		return db.Unscoped().Where("deleted_at IS NOT NULL")
	}
	return db
}

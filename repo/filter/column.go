package filter

import (
	"sort"

	"gorm.io/gorm"
)

// Column 把非保留键交给实体的 ScopeFilter。实体未实现 Filterable 时全部忽略。
// 键按字典序应用，保证生成的 SQL 稳定。
func Column(db *gorm.DB, model any, f Filters) *gorm.DB {
	filterable, ok := model.(Filterable)
	if !ok || len(f) == 0 {
		return db
	}

	keys := make([]string, 0, len(f))
	for key, value := range f {
		if IsReserved(key) || value == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		db = filterable.ScopeFilter(db, key, f[key])
	}
	return db
}

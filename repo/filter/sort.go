package filter

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sort 读取 sort 键: "-field" 为降序，否则按字面值升序。缺省时不排序。
func Sort(db *gorm.DB, _ any, f Filters) *gorm.DB {
	column, desc, ok := ParseSort(f["sort"])
	if !ok {
		return db
	}
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
}

// ParseSort 解析 sort 值，返回列名与是否降序。
func ParseSort(value string) (column string, desc bool, ok bool) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "-") {
		desc = true
		value = value[1:]
	}
	if value == "" {
		return "", false, false
	}
	return value, desc, true
}

// EncodeSort 是 ParseSort 的逆操作。
func EncodeSort(column string, desc bool) string {
	if desc {
		return "-" + column
	}
	return column
}

// Package filter 把请求里的筛选参数 (key/value) 依次应用到 gorm 查询上。
//
// 固定顺序: Column -> DateRange -> Sort -> Trashed。每个阶段只读取自己负责的键，
// 不修改其他阶段需要的键，因此各阶段互不影响。
package filter

import (
	"strings"

	"gorm.io/gorm"
)

// Filters 是请求形态的筛选参数。
type Filters map[string]string

// Searchable 由支持全文 (模糊) 搜索的实体实现，对应 q 参数。
type Searchable interface {
	ScopeSearch(db *gorm.DB, q string) *gorm.DB
}

// Filterable 由支持通用列筛选的实体实现。实体自行决定哪些键有效，未知键应忽略。
type Filterable interface {
	ScopeFilter(db *gorm.DB, key, value string) *gorm.DB
}

// SoftDeletable 由支持软删除的实体实现。
type SoftDeletable interface {
	SupportsSoftDelete() bool
}

// Stage 是管道中的一个阶段。model 是目标实体的零值指针，用于能力判断。
type Stage func(db *gorm.DB, model any, f Filters) *gorm.DB

// Pipeline 是默认的阶段顺序。
var Pipeline = []Stage{Column, DateRange, Sort, Trashed}

// Apply 按 Pipeline 顺序应用所有阶段。
func Apply(db *gorm.DB, model any, f Filters) *gorm.DB {
	for _, stage := range Pipeline {
		db = stage(db, model, f)
	}
	return db
}

// 不参与列筛选的保留键
var reservedKeys = map[string]struct{}{
	"q":         {},
	"sort":      {},
	"direction": {},
	"trashed":   {},
	"page":      {},
	"per_page":  {},
	"limit":     {},
	"offset":    {},
}

var reservedSuffixes = []string{"_from", "_to", "_gt", "_gte", "_lt", "_lte"}

// IsReserved 判断 key 是否由其他阶段或分页处理。
func IsReserved(key string) bool {
	if _, ok := reservedKeys[key]; ok {
		return true
	}
	for _, suffix := range reservedSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

// Clone 返回 f 的拷贝，nil 仍为 nil。
func (f Filters) Clone() Filters {
	if f == nil {
		return nil
	}
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

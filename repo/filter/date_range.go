package filter

import (
	"time"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// DateRangeFields 是支持 _from/_to 的时间字段。
var DateRangeFields = []string{"created_at", "published_at"}

// DateRange 处理 <field>_from (>=) 与 <field>_to (<=)，按日期比较。
// 空值或无法解析的日期不生效。
func DateRange(db *gorm.DB, _ any, f Filters) *gorm.DB {
	for _, field := range DateRangeFields {
		if from, ok := parseDate(f[field+"_from"]); ok {
			db = db.Where("DATE("+field+") >= ?", from)
		}
		if to, ok := parseDate(f[field+"_to"]); ok {
			db = db.Where("DATE("+field+") <= ?", to)
		}
	}
	return db
}

func parseDate(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return "", false
	}
	return t.Format(dateLayout), true
}

package entities

import "gorm.io/gorm"

// AutoMigrate 注册自定义关联表并迁移所有实体。
// SetupJoinTable 必须在使用 Tags 关联之前调用，因此测试也通过这里建表。
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Post{}, "Tags", &PostTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(&User{}, &Category{}, &Tag{}, &Post{}, &PostTag{})
}

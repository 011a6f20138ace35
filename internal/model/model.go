package model

import (
	"gorm.io/gorm"

	"kb-backend/internal/model/article"
	"kb-backend/internal/model/category"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		&category.Category{},
		&article.Article{},
	)
	if err != nil {
		return err
	}
	return nil
}

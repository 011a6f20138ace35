// Package article 文章相关模型
package article

import (
	"time"

	"gorm.io/datatypes"
)

// Article 文章基础信息表
// files/images 字段以 JSON 文本形式存放附件数组（base64 内联存储），
// 读取后统一在附件包里规范化成 []Attachment，内部组件不关心原始表示
type Article struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	// 所属分类的外键
	CategoryID uint `gorm:"not null;index" json:"category_id"`
	// 附件数组（文档等任意二进制），JSON 存储
	Files datatypes.JSON `gorm:"type:jsonb" json:"files,omitempty"`
	// 图片数组，与 files 结构相同、语义不同
	Images datatypes.JSON `gorm:"type:jsonb" json:"images,omitempty"`
	// 是否以幻灯片方式渲染内容
	EnableSlideshow bool `gorm:"default:false" json:"enable_slideshow"`
	// 阅读量统计
	ViewCount uint      `gorm:"default:0" json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

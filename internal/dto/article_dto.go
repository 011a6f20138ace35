package dto

import (
	"kb-backend/internal/attachment"
)

// AttachmentPayload 附件跨线格式：{name, type, size?, data(base64)}
// id 为空表示本次新增的附件
type AttachmentPayload struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required,max=255"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Data string `json:"data"`
}

// ToAttachments 转成内部附件表示
func ToAttachments(payloads []AttachmentPayload) []attachment.Attachment {
	out := make([]attachment.Attachment, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, attachment.Attachment{
			ID:   p.ID,
			Name: p.Name,
			Type: p.Type,
			Size: p.Size,
			Data: p.Data,
		})
	}
	return out
}

// CreateArticleRequest 创建文章请求
type CreateArticleRequest struct {
	Title           string              `json:"title" binding:"required,max=255"`
	Content         string              `json:"content"`
	CategoryID      uint                `json:"category_id" binding:"required"`
	Files           []AttachmentPayload `json:"files"`
	Images          []AttachmentPayload `json:"images"`
	EnableSlideshow bool                `json:"enable_slideshow"`
}

// UpdateArticleRequest 更新文章请求
// filesToRemove/imagesToRemove 携带要删除的附件 ID；
// newFiles/newImages 是本次新增的附件，缺 id 由服务端分配
type UpdateArticleRequest struct {
	Title           *string             `json:"title" binding:"omitempty,max=255"`
	Content         *string             `json:"content"`
	CategoryID      *uint               `json:"category_id"`
	EnableSlideshow *bool               `json:"enable_slideshow"`
	FilesToRemove   []string            `json:"filesToRemove"`
	ImagesToRemove  []string            `json:"imagesToRemove"`
	NewFiles        []AttachmentPayload `json:"newFiles"`
	NewImages       []AttachmentPayload `json:"newImages"`
}

// ArticleListItem 列表项，不携带附件负载
type ArticleListItem struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	CategoryID      uint   `json:"category_id"`
	EnableSlideshow bool   `json:"enable_slideshow"`
	ViewCount       uint   `json:"view_count"`
	FileCount       int    `json:"file_count"`
	ImageCount      int    `json:"image_count"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ArticleResponse 文章详情响应
type ArticleResponse struct {
	ID              uint                    `json:"id"`
	Title           string                  `json:"title"`
	Content         string                  `json:"content"`
	CategoryID      uint                    `json:"category_id"`
	Files           []attachment.Attachment `json:"files"`
	Images          []attachment.Attachment `json:"images"`
	EnableSlideshow bool                    `json:"enable_slideshow"`
	ViewCount       uint                    `json:"view_count"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

// CategoryRequest 创建/更新分类请求
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	SortOrder   int    `json:"sort_order"`
}

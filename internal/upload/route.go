package upload

import (
	"github.com/gin-gonic/gin"

	"kb-backend/config"
	"kb-backend/internal/middleware"
)

// RegisterRoutes 注册上传路由（仅管理员）
func RegisterRoutes(r *gin.RouterGroup, uploadConf config.UploadConfig) {
	h := NewHandler(uploadConf.Dir, uploadConf.MaxSizeMB, uploadConf.PublicPrefix)

	g := r.Group("/upload", middleware.JWTAuth(), middleware.AdminOnly())
	{
		g.POST("/image", h.UploadImage)
	}
}

package file

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册文件访问路由（公开读）
func RegisterRoutes(r *gin.RouterGroup, uploadDir string) {
	h := NewHandler(uploadDir)

	g := r.Group("/uploads")
	{
		g.GET("/:filename", h.ServeFile)
	}
}

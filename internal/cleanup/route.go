package cleanup

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册清理相关路由（需要管理员权限，由上层挂中间件）
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, service *Service) {
	h := NewHandler(service, db)

	g := r.Group("/cleanup")
	{
		g.POST("/articles/:id", h.CleanupArticle)
		g.GET("/orphans", h.ScanOrphans)
		g.POST("/orphans/delete", h.BulkDeleteOrphans)
	}
}

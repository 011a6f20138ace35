package article

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kb-backend/internal/cleanup"
	"kb-backend/internal/middleware"
)

// RegisterRoutes 注册文章路由
// 读接口公开，写接口要求管理员
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, cleanupSvc *cleanup.Service) {
	repo := NewRepository(db)
	service := NewService(repo, cleanupSvc)
	h := NewHandler(service)

	g := r.Group("/articles")
	{
		g.GET("", h.List)
		g.GET("/:id", h.Get)
	}

	admin := r.Group("/articles", middleware.JWTAuth(), middleware.AdminOnly())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

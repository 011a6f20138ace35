package category

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kb-backend/internal/article"
	"kb-backend/internal/middleware"
)

// RegisterRoutes 注册分类路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	repo := NewRepository(db)
	service := NewService(repo, article.NewRepository(db))
	h := NewHandler(service)

	g := r.Group("/categories")
	{
		g.GET("", h.List)
	}

	admin := r.Group("/categories", middleware.JWTAuth(), middleware.AdminOnly())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

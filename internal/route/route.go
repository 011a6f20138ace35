package route

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kb-backend/config"
	"kb-backend/internal/article"
	"kb-backend/internal/category"
	"kb-backend/internal/cleanup"
	"kb-backend/internal/database"
	"kb-backend/internal/file"
	"kb-backend/internal/middleware"
	"kb-backend/internal/upload"
)

func initRoute(r *gin.Engine) {
	db := database.GetDB()
	uploadConf := config.Conf.Upload

	deleter, err := cleanup.NewSafeDeleter(uploadConf.Dir)
	if err != nil {
		log.Fatalf("初始化上传目录失败: %v", err)
	}
	cleanupService := cleanup.NewService(db, deleter, database.RedisDB)

	api := r.Group("/api/v1")

	category.RegisterRoutes(api, db)
	article.RegisterRoutes(api, db, cleanupService)
	upload.RegisterRoutes(api, uploadConf)
	file.RegisterRoutes(api, uploadConf.Dir)

	admin := api.Group("", middleware.JWTAuth(), middleware.AdminOnly())
	cleanup.RegisterRoutes(admin, db, cleanupService)

	r.GET("/health", healthCheck)
}

// healthCheck 存活检查 + 依赖探测
func healthCheck(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if sqlDB, err := database.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
		status["status"] = "degraded"
		status["database"] = "down"
	} else {
		status["database"] = "up"
	}

	if database.RedisDB != nil {
		ctx, cancel := context.WithTimeout(c, 2*time.Second)
		defer cancel()
		if err := database.RedisDB.Ping(ctx).Err(); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	} else {
		status["redis"] = "disabled"
	}

	c.JSON(200, status)
}

func SetupRouter() *gin.Engine {
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r)

	return r
}

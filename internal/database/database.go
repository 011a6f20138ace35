package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"kb-backend/config"
	"kb-backend/internal/model"
	dbpkg "kb-backend/pkg/database"
)

var (
	PostgresDB *gorm.DB
	RedisDB    *dbpkg.RedisClient
)

func InitDatabase() {
	initPostgres()
	initRedis()
}

func initPostgres() {
	databaseConf := config.Conf.Database

	// 设置默认日志级别
	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	var err error
	PostgresDB, err = dbpkg.InitPostgres(
		&dbpkg.PostgresConfig{
			ServiceName:     "kb-backend",
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)

	if err != nil {
		panic(err)
	}

	// 初始化数据库表
	err = model.InitTable(PostgresDB)
	if err != nil {
		panic(err)
	}
}

func initRedis() {
	redisConf := config.Conf.Redis

	var err error
	RedisDB, err = dbpkg.InitRedis(&dbpkg.RedisConfig{
		ServiceName: "kb-backend",
		Host:        redisConf.Host,
		Port:        redisConf.Port,
		Password:    redisConf.Password,
		DB:          redisConf.DB,
		PoolSize:    redisConf.PoolSize,
	})
	if err != nil {
		// Redis 只用于缓存扫描结果，连不上时降级运行
		log.Printf("Redis 不可用，扫描结果缓存被禁用: %v", err)
		RedisDB = nil
	}
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}

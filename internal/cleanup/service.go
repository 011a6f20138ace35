package cleanup

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"

	articlemodel "kb-backend/internal/model/article"
	dbpkg "kb-backend/pkg/database"
)

// 孤儿扫描结果的缓存键与有效期
const (
	orphanScanCacheKey = "cleanup:orphan_scan"
	orphanScanCacheTTL = 5 * time.Minute
)

// Service 清理服务：按文章清理 + 孤儿扫描 + 批量删除
type Service struct {
	db      *gorm.DB
	deleter *SafeDeleter
	// 可为 nil，此时跳过缓存
	redis *dbpkg.RedisClient
}

func NewService(db *gorm.DB, deleter *SafeDeleter, redis *dbpkg.RedisClient) *Service {
	return &Service{db: db, deleter: deleter, redis: redis}
}

// ScanUploads 扫描上传目录，对比全部文章的引用，找出孤儿文件
// 结果缓存在 Redis 中短期有效，refresh=true 时强制重新扫描
func (s *Service) ScanUploads(ctx context.Context, refresh bool) (*OrphanReport, error) {
	if !refresh {
		if cached := s.cachedReport(ctx); cached != nil {
			return cached, nil
		}
	}

	// 扫描只需要引用相关的列，title 之类的字段不用带出
	// files/images 里有 base64 负载，但引用扫描必须读它们
	var articles []articlemodel.Article
	if err := s.db.Select("id", "content", "files", "images").Find(&articles).Error; err != nil {
		return nil, err
	}

	entries, err := listUploadEntries(s.deleter.Root())
	if err != nil {
		return nil, err
	}

	report := ScanOrphans(articles, entries)
	s.cacheReport(ctx, report)
	return report, nil
}

func (s *Service) cachedReport(ctx context.Context) *OrphanReport {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, orphanScanCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var report OrphanReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil
	}
	return &report
}

func (s *Service) cacheReport(ctx context.Context, report *OrphanReport) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, orphanScanCacheKey, data, orphanScanCacheTTL).Err(); err != nil {
		log.Printf("[cleanup] 缓存扫描结果失败: %v", err)
	}
}

// InvalidateScanCache 批量删除后让缓存失效
func (s *Service) InvalidateScanCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Del(ctx, orphanScanCacheKey).Err()
}

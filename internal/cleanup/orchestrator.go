package cleanup

import (
	"fmt"
	"log"
	"time"

	"kb-backend/internal/attachment"
	articlemodel "kb-backend/internal/model/article"
)

// CleanupError 报告里的单条错误
type CleanupError struct {
	FileName string `json:"fileName,omitempty"`
	Error    string `json:"error"`
	// 普通文件错误为空，编排层兜底错误为 "critical"
	Type string `json:"type,omitempty"`
}

// CleanupReport 按文章清理的聚合报告
type CleanupReport struct {
	ArticleID    uint           `json:"articleId"`
	DeletedFiles []DeleteResult `json:"deletedFiles"`
	Errors       []CleanupError `json:"errors"`
	TotalDeleted int            `json:"totalDeleted"`
	HasErrors    bool           `json:"hasErrors"`
	StartTime    time.Time      `json:"startTime"`
	EndTime      time.Time      `json:"endTime"`
	DurationMs   int64          `json:"durationMs"`
}

// CleanupArticleFiles 清理一篇文章引用的所有上传文件
//
// 文件名来源取并集：内容扫描（四类URL/属性模式）+ files/images 字段扫描。
// 逐个调用删除器，单个失败不中断其余文件（尽力而为，无事务语义）。
// 编排过程中的意外 panic 被捕获并记录为一条 critical 错误，不向外传播
func (s *Service) CleanupArticleFiles(art *articlemodel.Article) (report *CleanupReport) {
	report = &CleanupReport{
		DeletedFiles: []DeleteResult{},
		Errors:       []CleanupError{},
		StartTime:    time.Now(),
	}

	defer func() {
		if r := recover(); r != nil {
			report.Errors = append(report.Errors, CleanupError{
				Error: fmt.Sprintf("清理过程中发生意外错误: %v", r),
				Type:  "critical",
			})
			report.HasErrors = true
		}
		report.EndTime = time.Now()
		report.DurationMs = report.EndTime.Sub(report.StartTime).Milliseconds()
	}()

	if art == nil {
		panic("article is nil")
	}
	report.ArticleID = art.ID

	names := referencedFilenames(art)
	log.Printf("[cleanup] 文章 %d 引用了 %d 个上传文件", art.ID, len(names))

	for _, name := range names {
		result := s.deleter.DeleteByName(name)
		if result.Success {
			report.DeletedFiles = append(report.DeletedFiles, result)
			report.TotalDeleted++
		} else {
			report.Errors = append(report.Errors, CleanupError{
				FileName: name,
				Error:    result.Error,
			})
			report.HasErrors = true
		}
	}

	return report
}

// referencedFilenames 单篇文章的全部文件名来源取并集、去重
func referencedFilenames(art *articlemodel.Article) []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(list []string) {
		for _, name := range list {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	add(ExtractContentFilenames(art.Content))
	add(attachment.ScanReferences(art.Files))
	add(attachment.ScanReferences(art.Images))
	return names
}

package cleanup

import (
	"os"

	articlemodel "kb-backend/internal/model/article"
)

// OrphanReport 孤儿文件扫描结果
type OrphanReport struct {
	TotalFiles      int      `json:"totalFiles"`
	UsedFiles       int      `json:"usedFiles"`
	UnusedFiles     int      `json:"unusedFiles"`
	UsedFilesList   []string `json:"usedFilesList"`
	UnusedFilesList []string `json:"unusedFilesList"`
}

// BulkDeleteReport 批量删除结果
type BulkDeleteReport struct {
	Results      []DeleteResult `json:"results"`
	TotalDeleted int            `json:"totalDeleted"`
	TotalFailed  int            `json:"totalFailed"`
}

// ScanOrphans 计算上传目录与全部文章引用的差集
//
// 纯函数：输入是全量文章和目录里实际存在的文件名，方便单测。
// "被使用" = 被任意文章的内容扫描或字段扫描命中
func ScanOrphans(articles []articlemodel.Article, entries []string) *OrphanReport {
	used := make(map[string]struct{})
	for i := range articles {
		for _, name := range referencedFilenames(&articles[i]) {
			used[name] = struct{}{}
		}
	}

	report := &OrphanReport{
		TotalFiles:      len(entries),
		UsedFilesList:   []string{},
		UnusedFilesList: []string{},
	}
	for _, name := range entries {
		if _, ok := used[name]; ok {
			report.UsedFiles++
			report.UsedFilesList = append(report.UsedFilesList, name)
		} else {
			report.UnusedFiles++
			report.UnusedFilesList = append(report.UnusedFilesList, name)
		}
	}
	return report
}

// listUploadEntries 列出上传目录中的普通文件（目录是平铺的，子目录忽略）
func listUploadEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// BulkDelete 对指定文件名列表逐个执行安全删除
// 始终返回逐文件结果，部分失败不影响其余文件
func (s *Service) BulkDelete(names []string) *BulkDeleteReport {
	report := &BulkDeleteReport{Results: []DeleteResult{}}
	for _, name := range names {
		result := s.deleter.DeleteByName(name)
		report.Results = append(report.Results, result)
		if result.Success {
			report.TotalDeleted++
		} else {
			report.TotalFailed++
		}
	}
	return report
}

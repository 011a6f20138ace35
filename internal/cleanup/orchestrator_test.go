package cleanup

import (
	"os"
	"path/filepath"
	"testing"

	"kb-backend/internal/attachment"
	articlemodel "kb-backend/internal/model/article"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	deleter, dir := newTestDeleter(t)
	// 纯文件系统测试不需要数据库和缓存
	return NewService(nil, deleter, nil), dir
}

func TestCleanupArticleFiles_UnionsAllSources(t *testing.T) {
	svc, dir := newTestService(t)
	writeTestFile(t, dir, "content.png")
	writeTestFile(t, dir, "field.png")

	art := &articlemodel.Article{
		ID:      7,
		Content: `<img src="/uploads/content.png">`,
		Files: attachment.Marshal([]attachment.Attachment{
			{ID: "f1", Name: "field.png"},
		}),
		Images: attachment.Marshal(nil),
	}

	report := svc.CleanupArticleFiles(art)

	if report.ArticleID != 7 {
		t.Errorf("ArticleID = %d, want 7", report.ArticleID)
	}
	if report.TotalDeleted != 2 {
		t.Errorf("TotalDeleted = %d, want 2: %+v", report.TotalDeleted, report)
	}
	if report.HasErrors {
		t.Errorf("unexpected errors: %+v", report.Errors)
	}
	if report.EndTime.Before(report.StartTime) {
		t.Error("EndTime before StartTime")
	}
}

// 三个引用文件里第二个删除失败时：2个成功、1个错误、HasErrors=true，
// 编排器不向外抛异常
func TestCleanupArticleFiles_BestEffort(t *testing.T) {
	svc, dir := newTestService(t)
	writeTestFile(t, dir, "a.png")
	// b.png 是目录，删除会失败
	if err := os.Mkdir(filepath.Join(dir, "b.png"), 0755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	writeTestFile(t, dir, "c.png")

	art := &articlemodel.Article{
		ID:      1,
		Content: `<img src="/uploads/a.png"><img src="/uploads/b.png"><img src="/uploads/c.png">`,
	}

	report := svc.CleanupArticleFiles(art)

	if len(report.DeletedFiles) != 2 {
		t.Errorf("DeletedFiles = %d, want 2", len(report.DeletedFiles))
	}
	if len(report.Errors) != 1 {
		t.Errorf("Errors = %d, want 1", len(report.Errors))
	}
	if !report.HasErrors {
		t.Error("HasErrors = false, want true")
	}
	if report.TotalDeleted != 2 {
		t.Errorf("TotalDeleted = %d, want 2", report.TotalDeleted)
	}
}

// 文章为 nil 时记录一条 critical 错误，不向调用方传播 panic
func TestCleanupArticleFiles_NilArticleIsCritical(t *testing.T) {
	svc, _ := newTestService(t)

	report := svc.CleanupArticleFiles(nil)

	if !report.HasErrors {
		t.Fatal("expected HasErrors for nil article")
	}
	if len(report.Errors) != 1 {
		t.Fatalf("Errors = %d, want 1", len(report.Errors))
	}
	if report.Errors[0].Type != "critical" {
		t.Errorf("error type = %q, want critical", report.Errors[0].Type)
	}
	if report.DurationMs < 0 {
		t.Error("DurationMs should be stamped")
	}
}

// 同一文件同时被内容和字段引用时只删一次，报告里只出现一次
func TestCleanupArticleFiles_DeduplicatesSources(t *testing.T) {
	svc, dir := newTestService(t)
	writeTestFile(t, dir, "shared.png")

	art := &articlemodel.Article{
		ID:      2,
		Content: `<img src="/uploads/shared.png">`,
		Images: attachment.Marshal([]attachment.Attachment{
			{ID: "i1", Name: "shared.png"},
		}),
	}

	report := svc.CleanupArticleFiles(art)
	if report.TotalDeleted != 1 {
		t.Errorf("TotalDeleted = %d, want 1", report.TotalDeleted)
	}
}

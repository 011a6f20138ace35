package cleanup

import (
	"reflect"
	"testing"

	"kb-backend/internal/attachment"
	articlemodel "kb-backend/internal/model/article"
)

func TestScanOrphans(t *testing.T) {
	articles := []articlemodel.Article{
		{
			ID:      1,
			Content: `<img src="/uploads/a.png">`,
		},
	}
	entries := []string{"a.png", "b.png", "c.png"}

	report := ScanOrphans(articles, entries)

	if report.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", report.TotalFiles)
	}
	if report.UsedFiles != 1 {
		t.Errorf("UsedFiles = %d, want 1", report.UsedFiles)
	}
	if report.UnusedFiles != 2 {
		t.Errorf("UnusedFiles = %d, want 2", report.UnusedFiles)
	}
	if !reflect.DeepEqual(report.UnusedFilesList, []string{"b.png", "c.png"}) {
		t.Errorf("UnusedFilesList = %v", report.UnusedFilesList)
	}
	if !reflect.DeepEqual(report.UsedFilesList, []string{"a.png"}) {
		t.Errorf("UsedFilesList = %v", report.UsedFilesList)
	}
}

// 字段引用也算"被使用"，跨文章取并集
func TestScanOrphans_FieldReferencesCount(t *testing.T) {
	articles := []articlemodel.Article{
		{
			ID: 1,
			Files: attachment.Marshal([]attachment.Attachment{
				{ID: "f1", Name: "doc.png"},
			}),
		},
		{
			ID:      2,
			Content: `<img data-image="/uploads/slide.png">`,
		},
	}
	entries := []string{"doc.png", "slide.png", "orphan.png"}

	report := ScanOrphans(articles, entries)

	if report.UsedFiles != 2 {
		t.Errorf("UsedFiles = %d, want 2", report.UsedFiles)
	}
	if !reflect.DeepEqual(report.UnusedFilesList, []string{"orphan.png"}) {
		t.Errorf("UnusedFilesList = %v", report.UnusedFilesList)
	}
}

func TestScanOrphans_EmptyCorpus(t *testing.T) {
	report := ScanOrphans(nil, []string{"x.png"})
	if report.UsedFiles != 0 || report.UnusedFiles != 1 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestBulkDelete(t *testing.T) {
	svc, dir := newTestService(t)
	writeTestFile(t, dir, "b.png")
	writeTestFile(t, dir, "c.png")

	report := svc.BulkDelete([]string{"b.png", "c.png", "missing.png"})

	if len(report.Results) != 3 {
		t.Fatalf("Results = %d, want 3", len(report.Results))
	}
	// 不存在的文件按幂等删除计成功
	if report.TotalDeleted != 3 {
		t.Errorf("TotalDeleted = %d, want 3", report.TotalDeleted)
	}
	if report.TotalFailed != 0 {
		t.Errorf("TotalFailed = %d, want 0", report.TotalFailed)
	}
}

// 越界路径混进批量删除列表时单独失败，不影响其余文件
func TestBulkDelete_RejectsEscapes(t *testing.T) {
	svc, dir := newTestService(t)
	writeTestFile(t, dir, "ok.png")

	report := svc.BulkDelete([]string{"ok.png", "../../etc/passwd"})

	if report.TotalDeleted != 1 {
		t.Errorf("TotalDeleted = %d, want 1", report.TotalDeleted)
	}
	if report.TotalFailed != 1 {
		t.Errorf("TotalFailed = %d, want 1", report.TotalFailed)
	}
}

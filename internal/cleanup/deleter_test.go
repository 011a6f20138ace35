package cleanup

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestDeleter(t *testing.T) (*SafeDeleter, string) {
	t.Helper()
	dir := t.TempDir()
	deleter, err := NewSafeDeleter(dir)
	if err != nil {
		t.Fatalf("NewSafeDeleter: %v", err)
	}
	return deleter, dir
}

func writeTestFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("test-content"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestSafeDeleter_DeletesRegularFile(t *testing.T) {
	deleter, dir := newTestDeleter(t)
	writeTestFile(t, dir, "image-1700000000000-1.png")

	result := deleter.DeleteByName("image-1700000000000-1.png")
	if !result.Success {
		t.Fatalf("expected success, got error: %s", result.Error)
	}
	if result.Size != int64(len("test-content")) {
		t.Errorf("Size = %d, want %d", result.Size, len("test-content"))
	}
	if result.ModTime.IsZero() {
		t.Error("expected ModTime metadata to be captured")
	}

	if _, err := os.Stat(filepath.Join(dir, "image-1700000000000-1.png")); !os.IsNotExist(err) {
		t.Error("file still exists after delete")
	}
}

// 删除不存在的文件视为成功，且重复删除仍然成功（幂等）
func TestSafeDeleter_IdempotentDelete(t *testing.T) {
	deleter, _ := newTestDeleter(t)

	first := deleter.DeleteByName("missing.png")
	if !first.Success {
		t.Fatalf("first delete of missing file: success=false, error=%s", first.Error)
	}

	second := deleter.DeleteByName("missing.png")
	if !second.Success {
		t.Fatalf("second delete of missing file: success=false, error=%s", second.Error)
	}
}

// 各种相对路径逃逸变体都必须在任何文件系统访问前被拒绝
func TestSafeDeleter_PathConfinement(t *testing.T) {
	deleter, dir := newTestDeleter(t)

	escapes := []string{
		filepath.Join(dir, "../../etc/passwd"),
		filepath.Join(dir, "..", "outside.png"),
		filepath.Join(dir, "a", "..", "..", "escape.png"),
		"/etc/passwd",
		filepath.Dir(dir), // 父目录
	}

	for _, target := range escapes {
		result := deleter.Delete(target)
		if result.Success {
			t.Errorf("Delete(%q) succeeded, want fail-closed rejection", target)
		}
	}

	// 根目录本身也不是合法删除目标
	if result := deleter.Delete(dir); result.Success {
		t.Error("deleting the uploads root itself should be rejected")
	}
}

// 存在但不是普通文件（目录）报失败且不删除
func TestSafeDeleter_RefusesNonRegularFile(t *testing.T) {
	deleter, dir := newTestDeleter(t)

	sub := filepath.Join(dir, "subdir.png")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	result := deleter.DeleteByName("subdir.png")
	if result.Success {
		t.Fatal("expected failure for directory target")
	}
	if _, err := os.Stat(sub); err != nil {
		t.Error("directory should not have been removed")
	}
}

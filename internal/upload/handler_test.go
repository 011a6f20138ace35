package upload

import (
	"regexp"
	"testing"

	"kb-backend/internal/cleanup"
)

// 生成的文件名必须匹配 image-<数字>-<数字>.<ext> 且通过白名单校验
func TestGenerateFilename(t *testing.T) {
	pattern := regexp.MustCompile(`^image-\d+-\d+\.png$`)

	name := GenerateFilename("png")
	if !pattern.MatchString(name) {
		t.Errorf("GenerateFilename = %q, want to match %s", name, pattern)
	}
	if !cleanup.IsValidFilename(name) {
		t.Errorf("generated name %q fails the validator", name)
	}
}

func TestGenerateFilename_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		name := GenerateFilename("jpg")
		if _, dup := seen[name]; dup {
			t.Fatalf("duplicate filename generated: %q", name)
		}
		seen[name] = struct{}{}
	}
}

package cleanup

import (
	"fmt"
	"testing"
)

// 白名单内的每个扩展名配合生成名模式都应通过；
// 危险扩展名无论名字如何都应拒绝
func TestIsValidFilename_AllowList(t *testing.T) {
	allowed := []string{"jpg", "jpeg", "png", "gif", "webp", "svg", "bmp"}
	for _, ext := range allowed {
		name := fmt.Sprintf("image-1700000000000-123456789.%s", ext)
		if !IsValidFilename(name) {
			t.Errorf("IsValidFilename(%q) = false, want true", name)
		}
	}

	denied := []string{
		"image-1700000000000-123456789.exe",
		"image-1700000000000-123456789.php",
		"shell.php",
		"evil.exe",
	}
	for _, name := range denied {
		if IsValidFilename(name) {
			t.Errorf("IsValidFilename(%q) = true, want false", name)
		}
	}
}

func TestIsValidFilename_Patterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"生成名模式", "image-1700000000000-42.png", true},
		{"保守字符集", "my_photo.2024.png", true},
		{"大写扩展名", "photo.PNG", true},
		{"空字符串", "", false},
		{"没有扩展名", "image", false},
		{"以点结尾", "image.", false},
		{"含路径分隔符", "a/b.png", false},
		{"含空格", "my photo.png", false},
		{"目录穿越", "../etc.png", false},
		{"只有扩展名的隐藏文件", ".png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidFilename(tt.input); got != tt.want {
				t.Errorf("IsValidFilename(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

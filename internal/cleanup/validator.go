// Package cleanup 上传文件的清理：按文章清理、孤儿扫描与批量删除
//
// 上传目录里的文件（编辑器内联上传产生）独立于文章的 base64 附件生命周期。
// 文章编辑删掉 <img> 标签、或常规删除路径之外的操作不会自动删文件，
// 孤儿文件靠显式扫描+批量删除回收。这是有意保留的行为：急切删除可能
// 与其它文章的交叉引用竞争
package cleanup

import (
	"regexp"
	"strings"
)

// 允许的图片扩展名白名单
var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
	"svg":  {},
	"bmp":  {},
}

var (
	// 上传端点生成的文件名模式：image-<时间戳>-<随机数>.<ext>
	generatedNamePattern = regexp.MustCompile(`^image-\d+-\d+\.[A-Za-z0-9]+$`)
	// 保守字符集
	safeCharsPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// IsValidFilename 判断候选文件名是否可接受
//
// 条件：扩展名（不区分大小写）在白名单内，且文件名匹配生成模式
// 或只含 [A-Za-z0-9_.-]。这只是保守白名单，路径封闭另由删除器保证
func IsValidFilename(name string) bool {
	if name == "" {
		return false
	}

	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return false
	}
	ext := strings.ToLower(name[idx+1:])
	if _, ok := allowedExtensions[ext]; !ok {
		return false
	}

	return generatedNamePattern.MatchString(name) || safeCharsPattern.MatchString(name)
}

package cleanup

import (
	"regexp"
	"strings"
)

// 富文本内容里上传文件引用的四类模式，互相独立地匹配：
//  a) API 相对路径  /api/v1/uploads/<name>
//  b) 直接路径      /uploads/<name>
//  c) src 属性指向上传路径
//  d) data-image 属性指向上传路径（幻灯片渲染用）
var (
	apiURLPattern    = regexp.MustCompile(`/api/v1/uploads/([A-Za-z0-9_.-]+)`)
	directURLPattern = regexp.MustCompile(`/uploads/([A-Za-z0-9_.-]+)`)
	srcAttrPattern   = regexp.MustCompile(`src=["']([^"']*uploads/[^"']+)["']`)
	dataImagePattern = regexp.MustCompile(`data-image=["']([^"']*uploads/[^"']+)["']`)
)

// ExtractContentFilenames 扫描富文本 HTML，提取被引用的上传文件名集合
//
// 结果去重、不保证顺序。每个候选都过一遍文件名白名单，不合法的静默丢弃。
// 空内容返回空集合，任何输入都不会 panic
func ExtractContentFilenames(content string) []string {
	if content == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var names []string
	add := func(candidate string) {
		name := tailSegment(candidate)
		if !IsValidFilename(name) {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, m := range apiURLPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	for _, m := range directURLPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	// src / data-image 匹配到的是完整路径，取最后一个路径段
	for _, m := range srcAttrPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	for _, m := range dataImagePattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}

	return names
}

func tailSegment(value string) string {
	if idx := strings.IndexAny(value, "?#"); idx >= 0 {
		value = value[:idx]
	}
	if idx := strings.LastIndex(value, "/"); idx >= 0 {
		value = value[idx+1:]
	}
	return value
}

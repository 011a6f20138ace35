package attachment

import (
	"encoding/json"
	"strings"
)

// 附件对象里可能携带文件引用的字段，按优先级排列
// 正常数据是 base64 内联、没有文件系统引用，但旧数据和外部导入
// 可能混有 filePath/url 之类的字段，扫描器对这种混合数据保持容忍
var referenceAccessors = []func(map[string]any) string{
	stringField("filename"),
	stringField("fileName"),
	stringField("name"),
	stringField("filePath"),
	stringField("path"),
	stringField("url"),
}

func stringField(key string) func(map[string]any) string {
	return func(obj map[string]any) string {
		v, ok := obj[key]
		if !ok {
			return ""
		}
		s, ok := v.(string)
		if !ok {
			return ""
		}
		return s
	}
}

// ScanReferences 从 files/images 的原始 JSON 中提取被引用的文件名集合
//
// 每个附件对象按 referenceAccessors 的顺序取第一个非空字符串字段，
// 截取最后一个路径段；含 ".." 的值整体丢弃。
// 每个附件最多贡献一个文件名；单个附件解析失败不影响其余附件
func ScanReferences(raw []byte) []string {
	items := decodeObjects(raw)
	if len(items) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var names []string
	for _, obj := range items {
		name := referencedName(obj)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// decodeObjects 宽松解码：数组、字符串包裹的数组都接受，坏数据返回空
func decodeObjects(raw []byte) []map[string]any {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return nil
		}
		return decodeObjects([]byte(inner))
	}

	// 先拆成原始元素再逐个解码，混入数组的坏元素（比如裸字符串）
	// 只丢弃自己，不能拖垮其余附件的引用
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &elements); err != nil {
		return nil
	}
	var items []map[string]any
	for _, element := range elements {
		var obj map[string]any
		if err := json.Unmarshal(element, &obj); err != nil {
			continue
		}
		items = append(items, obj)
	}
	return items
}

func referencedName(obj map[string]any) string {
	if obj == nil {
		return ""
	}
	for _, accessor := range referenceAccessors {
		value := accessor(obj)
		if value == "" {
			continue
		}
		// 含 ".." 的值整体丢弃，不尝试从中抢救一个文件名
		if strings.Contains(value, "..") {
			return ""
		}
		name := lastPathSegment(value)
		if name == "" {
			return ""
		}
		return name
	}
	return ""
}

func lastPathSegment(value string) string {
	// URL 查询参数不属于文件名
	if idx := strings.IndexAny(value, "?#"); idx >= 0 {
		value = value[:idx]
	}
	if idx := strings.LastIndex(value, "/"); idx >= 0 {
		value = value[idx+1:]
	}
	return strings.TrimSpace(value)
}

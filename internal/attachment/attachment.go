// Package attachment 文章附件的统一表示与合并逻辑
//
// files/images 两个字段在数据库里是 JSON 文本，历史数据可能是数组本身，
// 也可能是被字符串包了一层的数组（取决于旧的写入路径）。这里在持久化
// 边界统一规范化成 []Attachment，内部其它组件不再区分表示形式。
package attachment

import (
	"bytes"
	"encoding/json"
)

// Attachment base64 内联存储的附件（文件或图片）
type Attachment struct {
	// 文章内唯一ID，编辑过程中保持稳定
	ID   string `json:"id"`
	Name string `json:"name"`
	// MIME 类型
	Type string `json:"type,omitempty"`
	// 字节数，图片可以省略
	Size int64 `json:"size,omitempty"`
	// base64 编码的内容
	Data string `json:"data,omitempty"`
	// 本次编辑新增的附件标记，入库后为 false
	IsNew bool `json:"isNew,omitempty"`
}

// Normalize 把 JSON 列的原始内容规范化成附件数组
// 容忍三种形态：null/空、数组、被字符串包裹的数组文本
// 解析失败返回空数组而不是错误，坏数据不应让读文章失败
func Normalize(raw []byte) []Attachment {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []Attachment{}
	}

	// 字符串包裹的情况："[{...}]"
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return []Attachment{}
		}
		return Normalize([]byte(inner))
	}

	var list []Attachment
	if err := json.Unmarshal(raw, &list); err != nil {
		return []Attachment{}
	}
	if list == nil {
		return []Attachment{}
	}
	return list
}

// Marshal 序列化附件数组用于写回 JSON 列
func Marshal(list []Attachment) []byte {
	if list == nil {
		list = []Attachment{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return []byte("[]")
	}
	return data
}

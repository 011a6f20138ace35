package attachment

import (
	"github.com/google/uuid"
)

// Reconcile 计算更新后的附件数组
//
// 规则：
//  1. 现有数组里 ID 在 removeIDs 中的条目被剔除；removeIDs 里不存在的
//     ID 静默忽略，不算错误
//  2. 客户端新增的条目追加在后面，缺 ID 的分配新 ID，并打上 isNew 标记
//  3. 顺序保持：幸存的现有附件在前，新附件按提交顺序在后
//
// 除了给新条目分配 ID 外不修改任何条目，原数组不被改动
func Reconcile(current []Attachment, removeIDs []string, incoming []Attachment) []Attachment {
	removed := make(map[string]struct{}, len(removeIDs))
	for _, id := range removeIDs {
		removed[id] = struct{}{}
	}

	result := make([]Attachment, 0, len(current)+len(incoming))
	for _, att := range current {
		if _, ok := removed[att.ID]; ok {
			continue
		}
		result = append(result, att)
	}

	for _, att := range incoming {
		if att.ID == "" {
			att.ID = uuid.NewString()
		}
		att.IsNew = true
		result = append(result, att)
	}

	return result
}

// ClearNewFlags 入库前清除 isNew 标记
// isNew 只在一次编辑操作内有意义，不应持久化为 true
func ClearNewFlags(list []Attachment) []Attachment {
	out := make([]Attachment, len(list))
	for i, att := range list {
		att.IsNew = false
		out[i] = att
	}
	return out
}

package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DeleteResult 单个文件删除的结果，所有出口都走返回值，不抛异常
type DeleteResult struct {
	Success  bool      `json:"success"`
	FileName string    `json:"fileName"`
	Message  string    `json:"message,omitempty"`
	Error    string    `json:"error,omitempty"`
	Size     int64     `json:"size,omitempty"`
	ModTime  time.Time `json:"modTime,omitempty"`
}

// SafeDeleter 路径封闭的单文件删除器
// 上传根目录在构造时注入（显式配置，不读全局状态）
type SafeDeleter struct {
	root string
}

func NewSafeDeleter(uploadDir string) (*SafeDeleter, error) {
	abs, err := filepath.Abs(uploadDir)
	if err != nil {
		return nil, fmt.Errorf("无法解析上传目录: %w", err)
	}
	return &SafeDeleter{root: filepath.Clean(abs)}, nil
}

// Root 返回规范化后的上传根目录
func (d *SafeDeleter) Root() string {
	return d.root
}

// DeleteByName 按文件名删除上传目录内的文件
func (d *SafeDeleter) DeleteByName(name string) DeleteResult {
	return d.Delete(filepath.Join(d.root, name))
}

// Delete 删除一个应当位于上传目录内的目标路径
//
//  1. 目标与根目录都规范化为绝对路径，目标不在根目录前缀下则直接
//     拒绝（fail-closed），这一步在任何文件系统访问之前执行
//  2. 文件不存在视为成功（幂等删除）
//  3. 存在但不是普通文件（例如目录）报失败、不删除
//  4. 否则记录 size/修改时间元数据后删除
//
// 每次调用至多发生一次文件系统删除
func (d *SafeDeleter) Delete(target string) DeleteResult {
	name := filepath.Base(target)
	result := DeleteResult{FileName: name}

	abs, err := filepath.Abs(target)
	if err != nil {
		result.Error = fmt.Sprintf("路径解析失败: %v", err)
		return result
	}
	abs = filepath.Clean(abs)

	// 路径封闭检查：唯一的目录穿越防线
	if !d.contains(abs) {
		result.Error = "路径越出上传目录，拒绝删除"
		return result
	}

	info, err := os.Lstat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			result.Success = true
			result.Message = "文件不存在，视为已删除"
			return result
		}
		result.Error = err.Error()
		return result
	}

	if !info.Mode().IsRegular() {
		result.Error = "目标不是普通文件"
		return result
	}

	result.Size = info.Size()
	result.ModTime = info.ModTime()

	if err := os.Remove(abs); err != nil {
		result.Size = 0
		result.ModTime = time.Time{}
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Message = "已删除"
	return result
}

func (d *SafeDeleter) contains(abs string) bool {
	if abs == d.root {
		// 根目录本身不是可删除目标
		return false
	}
	return strings.HasPrefix(abs, d.root+string(filepath.Separator))
}

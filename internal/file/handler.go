// Package file 上传文件的对外服务
package file

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kb-backend/internal/cleanup"
)

// 扩展名 → Content-Type 的固定映射，未知扩展名按二进制流处理
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
}

// ContentTypeFor 按扩展名推断 Content-Type
func ContentTypeFor(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}

type Handler struct {
	dir string
}

func NewHandler(dir string) *Handler {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return &Handler{dir: filepath.Clean(abs)}
}

// ServeFile 在线预览上传文件
// GET /api/v1/uploads/:filename
func (h *Handler) ServeFile(c *gin.Context) {
	name := c.Param("filename")

	// 白名单校验在前，封闭检查在后，任何一步失败都不碰文件系统
	if !cleanup.IsValidFilename(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的文件名"})
		return
	}

	target := filepath.Clean(filepath.Join(h.dir, name))
	if !strings.HasPrefix(target, h.dir+string(filepath.Separator)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的文件路径"})
		return
	}

	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "文件不存在"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "文件读取失败"})
		}
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		c.JSON(http.StatusNotFound, gin.H{"error": "文件不存在"})
		return
	}

	// 在线预览模式
	c.Header("Content-Type", ContentTypeFor(name))
	c.Header("Content-Disposition", `inline; filename="`+name+`"`)
	c.Header("Content-Length", strconv.FormatInt(info.Size(), 10))

	// 生成名带时间戳，内容不会变，可以长期缓存
	c.Header("Cache-Control", "public, max-age=31536000")

	c.Status(http.StatusOK)
	io.Copy(c.Writer, f)
}

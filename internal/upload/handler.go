// Package upload 富文本编辑器的内联图片上传
//
// 这里产生的文件独立于文章的 base64 附件：落在上传目录里，
// 文章内容通过 URL 引用它们，删除靠清理编排器或孤儿扫描
package upload

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kb-backend/internal/cleanup"
	"kb-backend/internal/dto"
	"kb-backend/pkg/response"
)

type Handler struct {
	dir          string
	maxSizeBytes int64
	publicPrefix string
}

func NewHandler(dir string, maxSizeMB int, publicPrefix string) *Handler {
	return &Handler{
		dir:          dir,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

// UploadImage 编辑器内联图片上传
// POST /api/v1/upload/image  (multipart, 字段名 image)
func (h *Handler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("缺少图片文件"),
		))
		return
	}

	if fileHeader.Size > h.maxSizeBytes {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage(fmt.Sprintf("文件超过大小上限 %d MB", h.maxSizeBytes/(1024*1024))),
		))
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	name := GenerateFilename(ext)
	// 生成的名字必须过白名单，否则是扩展名不被允许
	if !cleanup.IsValidFilename(name) {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("不支持的图片格式: "+ext),
		))
		return
	}

	if err := os.MkdirAll(h.dir, 0755); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InternalError),
			response.WithErrorMessage("创建上传目录失败"),
		))
		return
	}

	dst := filepath.Join(h.dir, name)
	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InternalError),
			response.WithErrorMessage("保存文件失败"),
		))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": name,
		"url":      h.publicPrefix + "/" + name,
		"size":     fileHeader.Size,
	})
}

// GenerateFilename 生成上传文件名：image-<毫秒时间戳>-<随机数>.<ext>
func GenerateFilename(ext string) string {
	return fmt.Sprintf("image-%d-%d.%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}

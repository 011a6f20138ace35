package cleanup

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kb-backend/internal/dto"
	articlemodel "kb-backend/internal/model/article"
	"kb-backend/pkg/response"
)

type Handler struct {
	service *Service
	db      *gorm.DB
}

func NewHandler(service *Service, db *gorm.DB) *Handler {
	return &Handler{service: service, db: db}
}

// CleanupArticle 显式触发单篇文章的文件清理（不删除文章本身）
// POST /api/v1/cleanup/articles/:id
func (h *Handler) CleanupArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的文章 ID"),
		))
		return
	}

	var art articlemodel.Article
	if err := h.db.First(&art, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("文章不存在"),
			))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InternalError),
			response.WithErrorMessage("查询文章失败"),
		))
		return
	}

	report := h.service.CleanupArticleFiles(&art)
	dto.SuccessResponse(c, report)
}

// ScanOrphans 扫描上传目录里的孤儿文件
// GET /api/v1/cleanup/orphans?refresh=true
func (h *Handler) ScanOrphans(c *gin.Context) {
	refresh := c.Query("refresh") == "true"

	report, err := h.service.ScanUploads(c.Request.Context(), refresh)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InternalError),
			response.WithErrorMessage("扫描失败: "+err.Error()),
		))
		return
	}
	dto.SuccessResponse(c, report)
}

// BulkDeleteRequest 批量删除请求体
type BulkDeleteRequest struct {
	Files []string `json:"files" binding:"required,min=1"`
}

// BulkDeleteOrphans 批量删除指定的上传文件
// POST /api/v1/cleanup/orphans/delete
// 始终返回 200 + 逐文件报告，个别文件失败不让整个请求失败
func (h *Handler) BulkDeleteOrphans(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	report := h.service.BulkDelete(req.Files)
	h.service.InvalidateScanCache(c.Request.Context())
	dto.SuccessResponse(c, report)
}

package article

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"kb-backend/internal/dto"
	"kb-backend/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List 文章列表
// GET /api/v1/articles?category_id=&search=&page=&page_size=
func (h *Handler) List(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	search := c.Query("search")

	items, total, err := h.service.List(uint(categoryID), search, page, pageSize)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InternalError),
			response.WithErrorMessage("获取文章列表失败"),
		))
		return
	}

	dto.SuccessResponse(c, gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Get 文章详情
// GET /api/v1/articles/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的文章 ID"),
		))
		return
	}

	art, err := h.service.Get(uint(id), true)
	if err != nil {
		h.writeError(c, err)
		return
	}
	dto.SuccessResponse(c, art)
}

// Create 创建文章
// POST /api/v1/articles
func (h *Handler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, err := h.service.Create(req)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InternalError),
			response.WithErrorMessage("创建文章失败: "+err.Error()),
		))
		return
	}
	dto.SuccessResponse(c, art)
}

// Update 更新文章
// PUT /api/v1/articles/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的文章 ID"),
		))
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, err := h.service.Update(uint(id), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	dto.SuccessResponse(c, art)
}

// Delete 删除文章，返回随带的文件清理报告
// DELETE /api/v1/articles/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的文章 ID"),
		))
		return
	}

	report, err := h.service.Delete(uint(id))
	if err != nil {
		h.writeError(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{
		"deleted":        true,
		"cleanup_report": report,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrArticleNotFound) {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("文章不存在"),
		))
		return
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(response.InternalError),
		response.WithErrorMessage("操作失败: "+err.Error()),
	))
}

package category

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

// List 分类列表
// GET /api/v1/categories
func (h *Handler) List(c *gin.Context) {
	categories, err := h.service.List()
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InternalError),
			response.WithErrorMessage("获取分类列表失败"),
		))
		return
	}
	dto.SuccessResponse(c, categories)
}

// Create 创建分类
// POST /api/v1/categories
func (h *Handler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	cat, err := h.service.Create(req)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InternalError),
			response.WithErrorMessage("创建分类失败: "+err.Error()),
		))
		return
	}
	dto.SuccessResponse(c, cat)
}

// Update 更新分类
// PUT /api/v1/categories/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的分类 ID"),
		))
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	cat, err := h.service.Update(uint(id), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	dto.SuccessResponse(c, cat)
}

// Delete 删除分类（分类下还有文章时拒绝）
// DELETE /api/v1/categories/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的分类 ID"),
		))
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		h.writeError(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage(err.Error()),
		))
	case errors.Is(err, ErrCategoryInUse):
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage(err.Error()),
		))
	default:
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InternalError),
			response.WithErrorMessage("操作失败: "+err.Error()),
		))
	}
}

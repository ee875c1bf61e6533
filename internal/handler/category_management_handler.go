package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/magnetmantra/magnet_api/internal/service"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// CategoryManagementHandler handles category CRUD HTTP endpoints.
type CategoryManagementHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryManagementHandler constructs a CategoryManagementHandler.
func NewCategoryManagementHandler(categoryService *service.CategoryService) *CategoryManagementHandler {
	return &CategoryManagementHandler{categoryService: categoryService}
}

// ListCategories handles GET /v1/admin/categories
func (h *CategoryManagementHandler) ListCategories(c *gin.Context) {
	q := &service.ListCategoriesQuery{
		Search: c.Query("search"),
		Page:   1,
	}

	if v := c.Query("active"); v != "" && v != "all" {
		active := v == "true"
		q.IsActive = &active
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			q.Page = p
		}
	}

	result, err := h.categoryService.ListCategories(q)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve categories")
		return
	}

	utils.SuccessWithPagination(c, 200, "Categories retrieved", result.Categories, result.Page, result.Limit, result.TotalItems)
}

// CreateCategory handles POST /v1/admin/categories
func (h *CategoryManagementHandler) CreateCategory(c *gin.Context) {
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create category")
		return
	}

	utils.Success(c, 201, "Category created successfully", category)
}

// GetCategory handles GET /v1/admin/categories/:id
func (h *CategoryManagementHandler) GetCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid category ID")
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		if errors.Is(err, utils.ErrCategoryNotFound) {
			utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve category")
		return
	}

	utils.Success(c, 200, "Category retrieved", category)
}

// UpdateCategory handles PUT /v1/admin/categories/:id
func (h *CategoryManagementHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid category ID")
		return
	}

	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, utils.ErrCategoryNotFound) {
			utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update category")
		return
	}

	utils.Success(c, 200, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /v1/admin/categories/:id
func (h *CategoryManagementHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrCategoryInUse) {
			utils.Error(c, 409, "CATEGORY_IN_USE", "Category still has products and cannot be deleted")
			return
		}
		if errors.Is(err, utils.ErrCategoryNotFound) {
			utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete category")
		return
	}

	utils.Success(c, 200, "Category deleted successfully", nil)
}

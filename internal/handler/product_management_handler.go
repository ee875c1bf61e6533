package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/magnetmantra/magnet_api/internal/service"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// ProductManagementHandler handles product CRUD HTTP endpoints.
type ProductManagementHandler struct {
	productService *service.ProductService
}

// NewProductManagementHandler constructs a ProductManagementHandler.
func NewProductManagementHandler(productService *service.ProductService) *ProductManagementHandler {
	return &ProductManagementHandler{productService: productService}
}

// productInputError maps validation failures to API error codes.
func productInputError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, utils.ErrPriceOutOfRange):
		utils.Error(c, 400, "PRICE_OUT_OF_RANGE", "Price must be between 0 and 100000")
	case errors.Is(err, utils.ErrRatingOutOfRange):
		utils.Error(c, 400, "RATING_OUT_OF_RANGE", "Rating must be between 0 and 5")
	case errors.Is(err, utils.ErrTooManyImages):
		utils.Error(c, 400, "TOO_MANY_IMAGES", "A product holds at most 5 images")
	default:
		return false
	}
	return true
}

// ListProducts handles GET /v1/admin/products
func (h *ProductManagementHandler) ListProducts(c *gin.Context) {
	q := &service.ListProductsQuery{
		Search: c.Query("search"),
		Page:   1,
	}

	if v := c.Query("category"); v != "" && v != "all" {
		if id, err := strconv.Atoi(v); err == nil {
			q.CategoryID = id
		}
	}
	if v := c.Query("locked"); v != "" && v != "all" {
		locked := v == "true"
		q.IsLocked = &locked
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			q.Page = p
		}
	}

	result, err := h.productService.ListProducts(q)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved", result.Products, result.Page, result.Limit, result.TotalItems)
}

// CreateProduct handles POST /v1/admin/products
func (h *ProductManagementHandler) CreateProduct(c *gin.Context) {
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		if productInputError(c, err) {
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create product")
		return
	}

	utils.Success(c, 201, "Product created successfully", product)
}

// GetProduct handles GET /v1/admin/products/:id
func (h *ProductManagementHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}

	utils.Success(c, 200, "Product retrieved", product)
}

// UpdateProduct handles PUT /v1/admin/products/:id
func (h *ProductManagementHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		if productInputError(c, err) {
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product")
		return
	}

	utils.Success(c, 200, "Product updated successfully", product)
}

// ToggleLock handles POST /v1/admin/products/:id/lock
func (h *ProductManagementHandler) ToggleLock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	var req struct {
		Locked bool `json:"locked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.productService.SetLocked(c.Request.Context(), id, req.Locked); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product lock")
		return
	}

	utils.Success(c, 200, "Product lock updated", gin.H{"id": id, "locked": req.Locked})
}

// DeleteProduct handles DELETE /v1/admin/products/:id
func (h *ProductManagementHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		return
	}

	utils.Success(c, 200, "Product deleted successfully", nil)
}

package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/magnetmantra/magnet_api/internal/catalog"
	"github.com/magnetmantra/magnet_api/internal/service"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// CatalogHandler serves the public storefront endpoints.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts handles GET /v1/catalog/products
// Query: category (id or "all"), search, sort, page, limit.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	q := &service.GalleryQuery{
		Search: c.Query("search"),
		Sort:   catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortNewest))),
	}

	// "all" keeps the zero value and is omitted from the predicate.
	if v := c.Query("category"); v != "" && v != "all" {
		if id, err := strconv.Atoi(v); err == nil {
			q.CategoryID = id
		}
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			q.Page = p
		}
	}
	if v := c.Query("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil {
			q.Limit = l
		}
	}

	if !catalog.ValidSortKey(q.Sort) {
		utils.Error(c, 400, "INVALID_SORT", "Unknown sort key")
		return
	}

	page, err := h.catalogService.ListGallery(c.Request.Context(), q)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved", page.Products, page.Page, page.Limit, page.TotalItems)
}

// GetProduct handles GET /v1/catalog/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	detail, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}

	utils.Success(c, 200, "Product retrieved", detail)
}

// ListCategories handles GET /v1/catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve categories")
		return
	}
	utils.Success(c, 200, "Categories retrieved", categories)
}

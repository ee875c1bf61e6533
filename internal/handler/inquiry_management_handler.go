package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/service"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// InquiryManagementHandler handles the back-office inquiry workflow.
type InquiryManagementHandler struct {
	inquiryService *service.InquiryService
}

// NewInquiryManagementHandler constructs an InquiryManagementHandler.
func NewInquiryManagementHandler(inquiryService *service.InquiryService) *InquiryManagementHandler {
	return &InquiryManagementHandler{inquiryService: inquiryService}
}

// ListInquiries handles GET /v1/admin/inquiries
func (h *InquiryManagementHandler) ListInquiries(c *gin.Context) {
	q := &service.ListInquiriesQuery{
		Search: c.Query("search"),
		Page:   1,
	}

	if v := c.Query("status"); v != "" && v != "all" {
		q.Status = models.InquiryStatus(v)
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			q.Page = p
		}
	}

	result, err := h.inquiryService.ListInquiries(q)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidStatus) {
			utils.Error(c, 400, "INVALID_STATUS", "Unknown inquiry status")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve inquiries")
		return
	}

	utils.SuccessWithPagination(c, 200, "Inquiries retrieved", result.Inquiries, result.Page, result.Limit, result.TotalItems)
}

// GetInquiry handles GET /v1/admin/inquiries/:id
func (h *InquiryManagementHandler) GetInquiry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid inquiry ID")
		return
	}

	inquiry, err := h.inquiryService.GetInquiry(id)
	if err != nil {
		if errors.Is(err, utils.ErrInquiryNotFound) {
			utils.Error(c, 404, "INQUIRY_NOT_FOUND", "Inquiry not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve inquiry")
		return
	}

	utils.Success(c, 200, "Inquiry retrieved", inquiry)
}

// UpdateStatus handles PUT /v1/admin/inquiries/:id/status
func (h *InquiryManagementHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid inquiry ID")
		return
	}

	var req struct {
		Status models.InquiryStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.inquiryService.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, utils.ErrInvalidStatus) {
			utils.Error(c, 400, "INVALID_STATUS", "Unknown inquiry status")
			return
		}
		if errors.Is(err, utils.ErrInquiryNotFound) {
			utils.Error(c, 404, "INQUIRY_NOT_FOUND", "Inquiry not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update inquiry status")
		return
	}

	utils.Success(c, 200, "Inquiry status updated", gin.H{"id": id, "status": req.Status})
}

// DeleteInquiry handles DELETE /v1/admin/inquiries/:id
func (h *InquiryManagementHandler) DeleteInquiry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid inquiry ID")
		return
	}

	if err := h.inquiryService.DeleteInquiry(id); err != nil {
		if errors.Is(err, utils.ErrInquiryNotFound) {
			utils.Error(c, 404, "INQUIRY_NOT_FOUND", "Inquiry not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete inquiry")
		return
	}

	utils.Success(c, 200, "Inquiry deleted successfully", nil)
}

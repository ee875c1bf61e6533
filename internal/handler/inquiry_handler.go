package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/magnetmantra/magnet_api/internal/service"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// InquiryHandler serves the public contact form.
type InquiryHandler struct {
	inquiryService *service.InquiryService
}

// NewInquiryHandler constructs an InquiryHandler.
func NewInquiryHandler(inquiryService *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// Submit handles POST /v1/inquiries
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req service.SubmitInquiryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	inquiry, err := h.inquiryService.Submit(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to submit inquiry")
		return
	}

	// The customer keeps the reference id for support correlation.
	utils.Success(c, 201, "Inquiry submitted", gin.H{
		"referenceId": inquiry.ReferenceID,
		"status":      inquiry.Status,
	})
}

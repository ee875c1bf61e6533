package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/magnetmantra/magnet_api/internal/service"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// MediaHandler handles product image uploads to the image host.
type MediaHandler struct {
	mediaService *service.MediaService
}

// NewMediaHandler constructs a MediaHandler.
func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload handles POST /v1/admin/media (multipart, field "file").
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing file field")
		return
	}

	// Size gate before the bytes are even read; the service re-checks.
	if fileHeader.Size > service.MaxUploadBytes {
		utils.Error(c, 400, "FILE_TOO_LARGE", "File exceeds the 5MB limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Unreadable file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, service.MaxUploadBytes+1))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Unreadable file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.mediaService.Upload(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, data)
	if err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) {
			utils.Error(c, 400, "FILE_TOO_LARGE", "File exceeds the 5MB limit")
			return
		}
		if errors.Is(err, utils.ErrUnsupportedFileType) {
			utils.Error(c, 400, "UNSUPPORTED_FILE_TYPE", "Only JPEG, PNG, WebP, and GIF images are accepted")
			return
		}
		utils.Error(c, 502, "UPLOAD_FAILED", "Image host rejected the upload")
		return
	}

	utils.Success(c, 201, "File uploaded", result)
}

// Delete handles DELETE /v1/admin/media/:fileID
func (h *MediaHandler) Delete(c *gin.Context) {
	fileID := c.Param("fileID")
	if fileID == "" {
		utils.Error(c, 400, "INVALID_ID", "Missing file ID")
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), fileID); err != nil {
		utils.Error(c, 502, "DELETE_FAILED", "Image host rejected the deletion")
		return
	}

	utils.Success(c, 200, "File deleted", nil)
}

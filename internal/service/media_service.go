package service

import (
	"context"

	"github.com/magnetmantra/magnet_api/internal/utils"
	"github.com/magnetmantra/magnet_api/pkg/imagehost"
)

// MaxUploadBytes is the client-side size gate for image uploads.
const MaxUploadBytes = 5 << 20 // 5MB

// allowedImageTypes is the closed set of accepted upload MIME types.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ImageUploader is the image host surface media handling needs.
type ImageUploader interface {
	Upload(ctx context.Context, name string, data []byte) (*imagehost.UploadResult, error)
	Delete(ctx context.Context, fileID string) error
}

// MediaService validates and forwards product image uploads. Validation
// happens before any network call: an oversized or mistyped file is
// rejected without touching the image host.
type MediaService struct {
	uploader ImageUploader
}

// NewMediaService constructs a MediaService.
func NewMediaService(uploader ImageUploader) *MediaService {
	return &MediaService{uploader: uploader}
}

// Upload validates the file and sends it to the image host.
func (s *MediaService) Upload(ctx context.Context, filename, contentType string, size int64, data []byte) (*imagehost.UploadResult, error) {
	if size > MaxUploadBytes || int64(len(data)) > MaxUploadBytes {
		return nil, utils.ErrFileTooLarge
	}
	if !allowedImageTypes[contentType] {
		return nil, utils.ErrUnsupportedFileType
	}

	name, err := utils.GenerateUploadName(filename)
	if err != nil {
		return nil, err
	}
	return s.uploader.Upload(ctx, name, data)
}

// Delete removes a previously uploaded file by provider file id.
func (s *MediaService) Delete(ctx context.Context, fileID string) error {
	return s.uploader.Delete(ctx, fileID)
}

package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken        = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials  = errors.New("INVALID_CREDENTIALS")
	ErrForbidden           = errors.New("FORBIDDEN")
	ErrProductNotFound     = errors.New("PRODUCT_NOT_FOUND")
	ErrCategoryNotFound    = errors.New("CATEGORY_NOT_FOUND")
	ErrCategoryInUse       = errors.New("CATEGORY_IN_USE")
	ErrInquiryNotFound     = errors.New("INQUIRY_NOT_FOUND")
	ErrUserNotFound        = errors.New("USER_NOT_FOUND")
	ErrInvalidStatus       = errors.New("INVALID_STATUS")
	ErrInvalidRole         = errors.New("INVALID_ROLE")
	ErrPriceOutOfRange     = errors.New("PRICE_OUT_OF_RANGE")
	ErrRatingOutOfRange    = errors.New("RATING_OUT_OF_RANGE")
	ErrTooManyImages       = errors.New("TOO_MANY_IMAGES")
	ErrFileTooLarge        = errors.New("FILE_TOO_LARGE")
	ErrUnsupportedFileType = errors.New("UNSUPPORTED_FILE_TYPE")
)

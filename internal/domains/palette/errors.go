package palette

import "errors"

var (
	// Not-found errors
	ErrPaletteNotFound = errors.New("palette not found")

	// Classification errors
	ErrClassificationFailed = errors.New("classification request failed")
	ErrReferenceMismatch    = errors.New("classified sub-season has no reference entry")

	// Validation errors
	ErrInvalidImageURL = errors.New("image url is invalid")
	ErrInvalidEmail    = errors.New("email address is invalid")

	// Database errors
	ErrDatabaseQuery = errors.New("database query error")
)

// ToErrorCode converts an error to an API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPaletteNotFound):
		return "PALETTE_NOT_FOUND"
	case errors.Is(err, ErrClassificationFailed):
		return "CLASSIFICATION_FAILED"
	case errors.Is(err, ErrReferenceMismatch):
		return "REFERENCE_MISMATCH"
	case errors.Is(err, ErrInvalidImageURL):
		return "INVALID_IMAGE_URL"
	case errors.Is(err, ErrInvalidEmail):
		return "INVALID_EMAIL"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPaletteNotFound):
		return 404
	case errors.Is(err, ErrInvalidImageURL), errors.Is(err, ErrInvalidEmail):
		return 400
	case errors.Is(err, ErrClassificationFailed):
		return 502
	default:
		return 500
	}
}

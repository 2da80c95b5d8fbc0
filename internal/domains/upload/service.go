package upload

import "context"

// BlobStorage is the outbound port to the object store
type BlobStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// UploadResult carries the durable URL consumed by the analyze endpoint
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Service stores user photos and returns their public URLs
type Service interface {
	// StorePhoto validates, downscales and stores an uploaded photo.
	// Errors: ErrInvalidImage for rejected files
	StorePhoto(ctx context.Context, data []byte) (*UploadResult, error)
}

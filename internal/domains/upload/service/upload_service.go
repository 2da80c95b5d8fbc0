package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	u "palette-backend/internal/domains/upload"
	"palette-backend/internal/infrastructure/storage"
)

type uploadService struct {
	storage   u.BlobStorage
	processor *storage.ImageProcessor
}

func NewUploadService(blob u.BlobStorage, processor *storage.ImageProcessor) u.Service {
	return &uploadService{
		storage:   blob,
		processor: processor,
	}
}

// StorePhoto validates, downscales and stores a photo under a fresh key
func (s *uploadService) StorePhoto(ctx context.Context, data []byte) (*u.UploadResult, error) {
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, fmt.Errorf("%w: %v", u.ErrInvalidImage, err)
	}

	processed, err := s.processor.ProcessImage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", u.ErrInvalidImage, err)
	}

	key := fmt.Sprintf("palettes/%s.jpg", uuid.New().String())

	url, err := s.storage.Upload(ctx, key, processed, "image/jpeg")
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Photo upload failed")
		return nil, fmt.Errorf("%w: %v", u.ErrStorage, err)
	}

	log.Info().
		Str("key", key).
		Int("original_bytes", len(data)).
		Int("stored_bytes", len(processed)).
		Msg("Photo stored")

	return &u.UploadResult{URL: url, Key: key}, nil
}

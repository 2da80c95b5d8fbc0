package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ImageProcessor validates and downscales uploaded photos before storage.
// The inference service neither needs nor wants full-resolution images.
type ImageProcessor struct {
	MaxSize   int64 // bytes
	MaxPixels int   // longest edge after resize
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		MaxSize:   10 * 1024 * 1024, // 10MB
		MaxPixels: 1200,
	}
}

// ValidateImage checks size and format. Only JPEG and PNG are accepted.
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// ProcessImage downscales to MaxPixels on the longest edge and re-encodes
// as JPEG quality 90. Images already within bounds are still re-encoded,
// which normalizes format and strips metadata.
func (p *ImageProcessor) ProcessImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, p.MaxPixels, p.MaxPixels, imaging.Lanczos)

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}

	return b.Bytes(), nil
}

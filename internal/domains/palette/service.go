package palette

import (
	"context"

	"palette-backend/internal/infrastructure/inference"
)

// Classifier is the outbound port to the external classification service
type Classifier interface {
	Classify(ctx context.Context, photoURL string) (*inference.Result, error)
}

// EmailEnqueuer hands palette email deliveries to the background worker.
// Delivery is fire-and-forget from the caller's point of view.
type EmailEnqueuer interface {
	EnqueuePaletteEmail(ctx context.Context, paletteID int64, email string) error
}

// Service defines the palette business logic
type Service interface {
	// Analyze classifies the photo at imageURL, copies the matching
	// reference-table data, persists palette + colors + celebrity in one
	// transaction and returns the new palette id.
	// Errors: ErrClassificationFailed, ErrReferenceMismatch
	Analyze(ctx context.Context, imageURL string) (int64, error)

	// GetByID returns the presentation-ready view for a stored palette.
	// Errors: ErrPaletteNotFound
	GetByID(ctx context.Context, id int64) (*PaletteView, error)

	// GetLatest returns the most recent palette view.
	// Errors: ErrPaletteNotFound when no palette exists yet
	GetLatest(ctx context.Context) (*PaletteView, error)

	// RequestEmail stores the address and enqueues delivery of the
	// palette summary. Errors: ErrPaletteNotFound
	RequestEmail(ctx context.Context, paletteID int64, email string) error
}

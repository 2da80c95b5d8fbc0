package palette

import "context"

// Repository defines data access for palette records.
// Records are append-only: there is no update or delete operation.
type Repository interface {
	// Create inserts a palette with all its colors and the celebrity
	// reference atomically: either every row lands or none does.
	// Returns the generated palette id.
	Create(ctx context.Context, p *Palette) (int64, error)

	// GetByID eagerly loads a palette with its colors and celebrity.
	// Errors: ErrPaletteNotFound
	GetByID(ctx context.Context, id int64) (*Palette, error)

	// GetLatest returns the most recently created palette, eagerly
	// loaded. Errors: ErrPaletteNotFound when the table is empty.
	GetLatest(ctx context.Context) (*Palette, error)

	// SaveEmail stores an email address requesting a copy of the
	// given palette. Errors: ErrPaletteNotFound for unknown palettes.
	SaveEmail(ctx context.Context, paletteID int64, email string) error
}

package palette

import (
	"time"

	"github.com/shopspring/decimal"

	"palette-backend/internal/seasons"
)

// Palette represents one completed color analysis.
// Records are append-only: created once after classification, never updated.
type Palette struct {
	ID          int64                `json:"id" db:"id"`
	Season      seasons.Season       `json:"season" db:"season"`
	SubSeason   seasons.SubSeason    `json:"sub_season" db:"sub_season"`
	Description *string              `json:"description" db:"description"`
	Percentage  *decimal.Decimal     `json:"percentage" db:"percentage"` // rarity statistic, 0..100
	CreatedAt   time.Time            `json:"created_at" db:"created_at"`

	// Children, loaded eagerly by GetByID
	Colors    []Color    `json:"colors"`
	Celebrity *Celebrity `json:"celebrity"`
}

// Color is one color row owned by a palette.
// IsRecommended distinguishes model-recommended colors (true, with a
// reason) from taxonomy swatches copied out of the reference table
// (false, reason NULL).
type Color struct {
	ID            int64            `json:"id" db:"id"`
	PaletteID     int64            `json:"palette_id" db:"palette_id"`
	Name          string           `json:"name" db:"name"`
	Hex           string           `json:"hex" db:"hex"` // #RRGGBB
	Percentage    *decimal.Decimal `json:"percentage" db:"percentage"`
	IsRecommended bool             `json:"is_recommended" db:"is_recommended"`
	Reason        *string          `json:"reason" db:"reason"`
}

// Celebrity is the style icon copied from the reference table at
// creation time. At most one per palette.
type Celebrity struct {
	ID        int64          `json:"id" db:"id"`
	PaletteID int64          `json:"palette_id" db:"palette_id"`
	Name      string         `json:"name" db:"name"`
	Gender    seasons.Gender `json:"gender" db:"gender"`
}

// RecommendedColors returns only the model-recommended subset
func (p *Palette) RecommendedColors() []Color {
	var out []Color
	for _, c := range p.Colors {
		if c.IsRecommended {
			out = append(out, c)
		}
	}
	return out
}

// TaxonomyColors returns only the reference-table swatch subset
func (p *Palette) TaxonomyColors() []Color {
	var out []Color
	for _, c := range p.Colors {
		if !c.IsRecommended {
			out = append(out, c)
		}
	}
	return out
}

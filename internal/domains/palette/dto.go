package palette

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"palette-backend/internal/seasons"
)

// AnalyzeRequest - POST /v1/palettes/analyze
type AnalyzeRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}

// AnalyzeResponse carries the new palette id used to build the result page URL
type AnalyzeResponse struct {
	ID int64 `json:"id"`
}

// EmailRequest - POST /v1/palettes/:id/email
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ColourView is one recommended color in the presentation-ready view
type ColourView struct {
	Name       string           `json:"name"`
	Reason     string           `json:"reason"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

// SwatchView is one taxonomy swatch in the presentation-ready view
type SwatchView struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

// CelebrityView is the style icon in the presentation-ready view
type CelebrityView struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

// PaletteView is the nested structure the results page consumes.
// Colours holds only the model-recommended colors keyed by hex; the full
// taxonomy swatch set is carried separately in Palette so presentation
// keeps access to both.
type PaletteView struct {
	ID          int64                 `json:"id"`
	Season      string                `json:"season"`     // capitalized, e.g. "Spring"
	SubSeason   string                `json:"sub_season"` // e.g. "Light Spring"
	Description string                `json:"description"`
	Percentage  *decimal.Decimal      `json:"percentage,omitempty"`
	Colours     map[string]ColourView `json:"colours"`
	Palette     []SwatchView          `json:"palette"`
	Celebrity   *CelebrityView        `json:"celebrity,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ToView shapes a stored palette into the presentation-ready structure.
// When a recommended color has no stored reason, a generic sentence is
// synthesized from the color name and sub-season; stored reasons are
// returned verbatim.
func (p *Palette) ToView() *PaletteView {
	view := &PaletteView{
		ID:        p.ID,
		Season:    p.Season.Display(),
		SubSeason: string(p.SubSeason),
		Colours:   make(map[string]ColourView),
		CreatedAt: p.CreatedAt,
	}

	if p.Description != nil {
		view.Description = *p.Description
	}
	view.Percentage = p.Percentage

	for _, c := range p.RecommendedColors() {
		reason := synthesizeReason(c.Name, p.SubSeason)
		if c.Reason != nil && *c.Reason != "" {
			reason = *c.Reason
		}
		view.Colours[c.Hex] = ColourView{
			Name:       c.Name,
			Reason:     reason,
			Percentage: c.Percentage,
		}
	}

	for _, c := range p.TaxonomyColors() {
		view.Palette = append(view.Palette, SwatchView{Hex: c.Hex, Name: c.Name})
	}

	if p.Celebrity != nil {
		view.Celebrity = &CelebrityView{
			Name:   p.Celebrity.Name,
			Gender: string(p.Celebrity.Gender),
		}
	}

	return view
}

func synthesizeReason(colorName string, sub seasons.SubSeason) string {
	return fmt.Sprintf("This %s perfectly complements your %s palette.", colorName, sub)
}

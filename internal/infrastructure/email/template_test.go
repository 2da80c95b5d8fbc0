package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPaletteEmail(t *testing.T) {
	html := RenderPaletteEmail(PaletteEmailData{
		Email:        "user@example.com",
		SeasonalType: "Light Spring",
		ColorHexes:   []string{"#FF6F61", "#98FB98", "#87CEEB"},
		PaletteURL:   "http://localhost:3000/7",
	})

	assert.Contains(t, html, "Your Light Spring Color Palette")
	assert.Contains(t, html, "background-color: #FF6F61")
	assert.Contains(t, html, "background-color: #98FB98")
	assert.Contains(t, html, "background-color: #87CEEB")
	assert.Contains(t, html, `href="http://localhost:3000/7"`)
}

func TestRenderPaletteEmail_CapsSwatchesAtSix(t *testing.T) {
	hexes := []string{"#111111", "#222222", "#333333", "#444444", "#555555", "#666666", "#777777", "#888888"}

	html := RenderPaletteEmail(PaletteEmailData{
		SeasonalType: "True Winter",
		ColorHexes:   hexes,
		PaletteURL:   "http://localhost:3000/1",
	})

	assert.Equal(t, 6, strings.Count(html, "background-color: #"))
	assert.NotContains(t, html, "#777777")
}

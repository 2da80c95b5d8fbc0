package email

import (
	"fmt"
	"strings"
)

// RenderPaletteEmail builds the HTML summary: title, up to 6 color
// swatches and a link back to the full palette page.
func RenderPaletteEmail(data PaletteEmailData) string {
	hexes := data.ColorHexes
	if len(hexes) > 6 {
		hexes = hexes[:6]
	}

	var swatches strings.Builder
	for _, hex := range hexes {
		fmt.Fprintf(&swatches,
			`<div style="height: 40px; width: 40px; border-radius: 8px; background-color: %s; margin: 0 4px; display: inline-block;"></div>`,
			hex)
	}

	return fmt.Sprintf(`
    <div style="font-family: 'Helvetica', sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
      <h1 style="color: #2d3748; font-size: 24px; margin-bottom: 16px; text-align: center;">Your %[1]s Color Palette</h1>

      <p style="font-size: 16px; line-height: 1.5; margin-bottom: 24px;">
        Thanks for discovering your seasonal color palette! Here's your personalized color guide to help enhance your style.
      </p>

      <div style="background-color: #f7fafc; border-radius: 12px; padding: 24px; margin-bottom: 24px; text-align: center;">
        <h2 style="color: #4a5568; font-size: 18px; margin-bottom: 16px;">Your Colors</h2>
        <div style="display: block; text-align: center; margin-bottom: 16px;">
          %[2]s
        </div>
        <p style="font-size: 14px; color: #718096;">These colors are specially selected to complement your %[1]s type.</p>
      </div>

      <div style="text-align: center; margin-top: 32px;">
        <a href="%[3]s" style="background-color: #4a5568; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: bold; display: inline-block;">
          View Your Full Palette
        </a>
      </div>

      <p style="font-size: 14px; color: #718096; margin-top: 32px; text-align: center;">
        This email was sent because you requested your color palette from My Color Palette.
      </p>
    </div>
  `, data.SeasonalType, swatches.String(), data.PaletteURL)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"palette-backend/internal/domains/palette"
	"palette-backend/internal/infrastructure/email"
	"palette-backend/internal/infrastructure/queue"
)

// PaletteEmailHandler builds the asynq handler that delivers palette
// summary emails. The palette is re-read at send time so the email always
// reflects the stored record.
func PaletteEmailHandler(paletteSvc palette.Service, emailSvc email.EmailService, publicURL string) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var p queue.PaletteEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return asynq.SkipRetry // malformed payload, retrying cannot help
		}

		view, err := paletteSvc.GetByID(ctx, p.PaletteID)
		if err != nil {
			if errors.Is(err, palette.ErrPaletteNotFound) {
				return asynq.SkipRetry // palette deleted between enqueue and send
			}
			return err // transient DB error, retry
		}

		hexes := make([]string, 0, len(view.Palette))
		for _, swatch := range view.Palette {
			hexes = append(hexes, swatch.Hex)
		}

		data := email.PaletteEmailData{
			Email:        p.Email,
			SeasonalType: view.SubSeason,
			ColorHexes:   hexes,
			PaletteURL:   fmt.Sprintf("%s/palettes/%d", publicURL, p.PaletteID),
		}

		if err := emailSvc.SendPaletteEmail(ctx, data); err != nil {
			return err // network or SMTP failure, retry
		}
		return nil
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	p "palette-backend/internal/domains/palette"
	"palette-backend/internal/infrastructure/inference"
	"palette-backend/internal/seasons"
	"palette-backend/pkg/cache"
)

// Palettes are append-only, so a cached view can never go stale; the TTL
// only bounds memory.
const (
	viewCacheTTL = time.Hour
	viewCacheKey = "palette:view:%d"
)

type paletteService struct {
	repo       p.Repository
	classifier p.Classifier
	cache      cache.Cache
	emails     p.EmailEnqueuer
}

func NewPaletteService(repo p.Repository, classifier p.Classifier, c cache.Cache, emails p.EmailEnqueuer) p.Service {
	return &paletteService{
		repo:       repo,
		classifier: classifier,
		cache:      c,
		emails:     emails,
	}
}

// Analyze runs the full classification flow: one inference call, one
// reference-table lookup, one transactional persist.
func (s *paletteService) Analyze(ctx context.Context, imageURL string) (int64, error) {
	result, err := s.classifier.Classify(ctx, imageURL)
	if err != nil {
		log.Error().Err(err).Str("image_url", imageURL).Msg("Classification failed")
		return 0, fmt.Errorf("%w: %v", p.ErrClassificationFailed, err)
	}

	entry, found := seasons.Lookup(result.Season, result.SubSeason)
	if !found {
		// Taxonomy and reference table disagree. The classifier already
		// validated family membership, so this means broken reference data.
		log.Error().
			Str("season", string(result.Season)).
			Str("sub_season", string(result.SubSeason)).
			Msg("No reference entry for classified sub-season")
		return 0, p.ErrReferenceMismatch
	}

	pal := buildPalette(result, entry)

	id, err := s.repo.Create(ctx, pal)
	if err != nil {
		log.Error().Err(err).Msg("Failed to persist palette")
		return 0, err
	}

	log.Info().
		Int64("palette_id", id).
		Str("season", string(result.Season)).
		Str("sub_season", string(result.SubSeason)).
		Msg("Palette created")

	return id, nil
}

// buildPalette copies reference values and model output into a new record.
// Values are copied, not referenced: later edits to the reference table
// must not change past results.
func buildPalette(result *inference.Result, entry *seasons.Entry) *p.Palette {
	description := entry.Description
	percentage := entry.Percentage

	pal := &p.Palette{
		Season:      entry.Season,
		SubSeason:   entry.SubSeason,
		Description: &description,
		Percentage:  &percentage,
	}

	// Taxonomy swatches: flag=false, no reason
	for _, swatch := range entry.Colors {
		pal.Colors = append(pal.Colors, p.Color{
			Name:          swatch.Name,
			Hex:           swatch.Hex,
			IsRecommended: false,
		})
	}

	// Model-recommended colors: flag=true, reason verbatim
	for _, rec := range result.RecommendedColors {
		reason := rec.Reason
		pal.Colors = append(pal.Colors, p.Color{
			Name:          rec.Name,
			Hex:           rec.Hex,
			IsRecommended: true,
			Reason:        &reason,
		})
	}

	celeb := entry.Celebrity(result.Gender)
	pal.Celebrity = &p.Celebrity{
		Name:   celeb.Name,
		Gender: result.Gender,
	}

	return pal
}

func (s *paletteService) GetByID(ctx context.Context, id int64) (*p.PaletteView, error) {
	key := fmt.Sprintf(viewCacheKey, id)

	if s.cache != nil {
		var cached p.PaletteView
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			// Cache trouble must not break reads
			log.Error().Err(err).Int64("palette_id", id).Msg("Palette view cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	pal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := pal.ToView()

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, view, viewCacheTTL); err != nil {
			log.Error().Err(err).Int64("palette_id", id).Msg("Palette view cache write failed")
		}
	}

	return view, nil
}

func (s *paletteService) GetLatest(ctx context.Context) (*p.PaletteView, error) {
	pal, err := s.repo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	return pal.ToView(), nil
}

func (s *paletteService) RequestEmail(ctx context.Context, paletteID int64, email string) error {
	if err := s.repo.SaveEmail(ctx, paletteID, email); err != nil {
		return err
	}

	if err := s.emails.EnqueuePaletteEmail(ctx, paletteID, email); err != nil {
		log.Error().Err(err).Int64("palette_id", paletteID).Msg("Failed to enqueue palette email")
		return fmt.Errorf("enqueue palette email: %w", err)
	}

	log.Info().Int64("palette_id", paletteID).Msg("Palette email enqueued")
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	p "palette-backend/internal/domains/palette"
	"palette-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) p.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

// Create inserts the palette and all child rows in a single transaction.
// A failure anywhere rolls everything back; no partial records.
func (r *postgresRepository) Create(ctx context.Context, pal *p.Palette) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var paletteID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO palette (season, sub_season, description, percentage)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, pal.Season, pal.SubSeason, pal.Description, pal.Percentage).Scan(&paletteID)
		if err != nil {
			return 0, fmt.Errorf("insert palette: %w", err)
		}

		for _, c := range pal.Colors {
			_, err := tx.Exec(ctx, `
				INSERT INTO colors (palette_id, name, hex, percentage, is_recommended, reason)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, paletteID, c.Name, c.Hex, c.Percentage, c.IsRecommended, c.Reason)
			if err != nil {
				return 0, fmt.Errorf("insert color %s: %w", c.Hex, err)
			}
		}

		if pal.Celebrity != nil {
			_, err := tx.Exec(ctx, `
				INSERT INTO celebrities (palette_id, name, gender)
				VALUES ($1, $2, $3)
			`, paletteID, pal.Celebrity.Name, pal.Celebrity.Gender)
			if err != nil {
				return 0, fmt.Errorf("insert celebrity: %w", err)
			}
		}

		return paletteID, nil
	})
}

// GetByID fetches the palette row plus children eagerly
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*p.Palette, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, season, sub_season, description, percentage, created_at
		FROM palette
		WHERE id = $1
	`, id)

	pal, err := r.scanPalette(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, p.ErrPaletteNotFound
		}
		return nil, fmt.Errorf("%w: %v", p.ErrDatabaseQuery, err)
	}

	if err := r.loadChildren(ctx, pal); err != nil {
		return nil, err
	}

	return pal, nil
}

// GetLatest fetches the most recently created palette plus children
func (r *postgresRepository) GetLatest(ctx context.Context) (*p.Palette, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, season, sub_season, description, percentage, created_at
		FROM palette
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`)

	pal, err := r.scanPalette(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, p.ErrPaletteNotFound
		}
		return nil, fmt.Errorf("%w: %v", p.ErrDatabaseQuery, err)
	}

	if err := r.loadChildren(ctx, pal); err != nil {
		return nil, err
	}

	return pal, nil
}

// SaveEmail inserts a palette_email row. The FK makes an unknown palette
// id fail, which is mapped to ErrPaletteNotFound after an existence check.
func (r *postgresRepository) SaveEmail(ctx context.Context, paletteID int64, email string) error {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM palette WHERE id = $1)
	`, paletteID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("%w: %v", p.ErrDatabaseQuery, err)
	}
	if !exists {
		return p.ErrPaletteNotFound
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO palette_email (email, palette_id)
		VALUES ($1, $2)
	`, email, paletteID)
	if err != nil {
		return fmt.Errorf("%w: %v", p.ErrDatabaseQuery, err)
	}

	return nil
}

func (r *postgresRepository) scanPalette(row pgx.Row) (*p.Palette, error) {
	var pal p.Palette
	err := row.Scan(
		&pal.ID, &pal.Season, &pal.SubSeason,
		&pal.Description, &pal.Percentage, &pal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pal, nil
}

// loadChildren fetches color rows and the celebrity reference.
// Only the first celebrity row is used; the schema allows more but the
// product never writes more than one.
func (r *postgresRepository) loadChildren(ctx context.Context, pal *p.Palette) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, palette_id, name, hex, percentage, is_recommended, reason
		FROM colors
		WHERE palette_id = $1
		ORDER BY id
	`, pal.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", p.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c p.Color
		err := rows.Scan(
			&c.ID, &c.PaletteID, &c.Name, &c.Hex,
			&c.Percentage, &c.IsRecommended, &c.Reason,
		)
		if err != nil {
			return fmt.Errorf("%w: %v", p.ErrDatabaseQuery, err)
		}
		pal.Colors = append(pal.Colors, c)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", p.ErrDatabaseQuery, err)
	}

	var celeb p.Celebrity
	err = r.pool.QueryRow(ctx, `
		SELECT id, palette_id, name, gender
		FROM celebrities
		WHERE palette_id = $1
		ORDER BY id
		LIMIT 1
	`, pal.ID).Scan(&celeb.ID, &celeb.PaletteID, &celeb.Name, &celeb.Gender)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil // celebrity is optional
		}
		return fmt.Errorf("%w: %v", p.ErrDatabaseQuery, err)
	}
	pal.Celebrity = &celeb

	return nil
}

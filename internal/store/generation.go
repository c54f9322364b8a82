// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the PostgreSQL persistence layer. Stores accept a
// *sql.DB and wrap all SQL behind typed methods.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"logoforge/internal/models"
)

// GenerationStore handles the logo generation history table.
type GenerationStore struct {
	db *sql.DB
}

// NewGenerationStore creates a new GenerationStore with the given database connection.
func NewGenerationStore(db *sql.DB) *GenerationStore {
	return &GenerationStore{db: db}
}

// Save inserts a generation row and returns it with the generated ID and
// timestamp filled in.
func (s *GenerationStore) Save(g *models.Generation) (*models.Generation, error) {
	colors, err := json.Marshal(g.Colors)
	if err != nil {
		return nil, fmt.Errorf("marshal colors: %w", err)
	}
	params := g.Params
	if len(params) == 0 {
		params = []byte("{}")
	}

	result := &models.Generation{
		BusinessName: g.BusinessName,
		Industry:     g.Industry,
		StyleType:    g.StyleType,
		Colors:       g.Colors,
		ImageRef:     g.ImageRef,
		Params:       params,
	}

	// Callers may supply the row ID so the persisted row shares the ID
	// handed to the browser; otherwise the database generates one.
	if g.ID != uuid.Nil {
		err = s.db.QueryRow(`
			INSERT INTO logo_generations (id, business_name, industry, style, colors, image_ref, params)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`, g.ID, g.BusinessName, g.Industry, g.StyleType, colors, g.ImageRef, params,
		).Scan(&result.ID, &result.CreatedAt)
	} else {
		err = s.db.QueryRow(`
			INSERT INTO logo_generations (business_name, industry, style, colors, image_ref, params)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`, g.BusinessName, g.Industry, g.StyleType, colors, g.ImageRef, params,
		).Scan(&result.ID, &result.CreatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("save generation: %w", err)
	}
	return result, nil
}

// FindByID retrieves a generation row by its UUID. Returns nil if not found.
func (s *GenerationStore) FindByID(id uuid.UUID) (*models.Generation, error) {
	g := &models.Generation{}
	var colors []byte
	err := s.db.QueryRow(`
		SELECT id, business_name, industry, style, colors, image_ref,
		       params, rating, is_favorite, created_at
		FROM logo_generations WHERE id = $1
	`, id).Scan(
		&g.ID, &g.BusinessName, &g.Industry, &g.StyleType, &colors,
		&g.ImageRef, &g.Params, &g.Rating, &g.IsFavorite, &g.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find generation by id: %w", err)
	}
	if err := json.Unmarshal(colors, &g.Colors); err != nil {
		return nil, fmt.Errorf("unmarshal colors: %w", err)
	}
	return g, nil
}

// ListRecent returns the newest generation rows, capped at limit.
func (s *GenerationStore) ListRecent(limit int) ([]models.Generation, error) {
	rows, err := s.db.Query(`
		SELECT id, business_name, industry, style, colors, image_ref,
		       params, rating, is_favorite, created_at
		FROM logo_generations
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent generations: %w", err)
	}
	defer rows.Close()

	var items []models.Generation
	for rows.Next() {
		var g models.Generation
		var colors []byte
		if err := rows.Scan(
			&g.ID, &g.BusinessName, &g.Industry, &g.StyleType, &colors,
			&g.ImageRef, &g.Params, &g.Rating, &g.IsFavorite, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		if err := json.Unmarshal(colors, &g.Colors); err != nil {
			return nil, fmt.Errorf("unmarshal colors: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

// SetRating records a feedback rating on a generation row.
func (s *GenerationStore) SetRating(id uuid.UUID, rating int) error {
	_, err := s.db.Exec(`UPDATE logo_generations SET rating = $1 WHERE id = $2`, rating, id)
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	return nil
}

// SetFavorite toggles the favorite flag on a generation row.
func (s *GenerationStore) SetFavorite(id uuid.UUID, favorite bool) error {
	_, err := s.db.Exec(`UPDATE logo_generations SET is_favorite = $1 WHERE id = $2`, favorite, id)
	if err != nil {
		return fmt.Errorf("set favorite: %w", err)
	}
	return nil
}

// Stats aggregates the history table for the statistics endpoint.
type Stats struct {
	TotalGenerations int
	AverageRating    float64
	FavoriteCount    int
	TopStyle         string
}

// Stats returns aggregate counters over all generation rows.
func (s *GenerationStore) Stats() (*Stats, error) {
	st := &Stats{}
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(AVG(rating), 0),
		       COUNT(*) FILTER (WHERE is_favorite)
		FROM logo_generations
	`).Scan(&st.TotalGenerations, &st.AverageRating, &st.FavoriteCount)
	if err != nil {
		return nil, fmt.Errorf("generation stats: %w", err)
	}

	err = s.db.QueryRow(`
		SELECT COALESCE((
			SELECT style FROM logo_generations
			GROUP BY style ORDER BY COUNT(*) DESC, style ASC LIMIT 1
		), '')
	`).Scan(&st.TopStyle)
	if err != nil {
		return nil, fmt.Errorf("top style: %w", err)
	}
	return st, nil
}

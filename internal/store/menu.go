// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"pristoncodex/internal/models"
)

// MenuStore manages navigation menu entries.
type MenuStore struct {
	db *sql.DB
}

// NewMenuStore creates a new MenuStore.
func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{db: db}
}

const menuColumns = `id, title, slug, parent_id, "order", visible, icon, url`

// List returns visible menu entries ordered by their display order.
func (s *MenuStore) List(ctx context.Context) ([]models.Menu, error) {
	return s.query(ctx, "list menus", `
		SELECT `+menuColumns+` FROM menus
		WHERE visible = TRUE
		ORDER BY "order", id
	`)
}

func (s *MenuStore) query(ctx context.Context, op, query string) ([]models.Menu, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.Menu{}
	for rows.Next() {
		var m models.Menu
		if err := rows.Scan(&m.ID, &m.Title, &m.Slug, &m.ParentID, &m.Order, &m.Visible, &m.Icon, &m.URL); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Create inserts a menu entry. A missing parent yields an error wrapping
// ErrInvalidReference.
func (s *MenuStore) Create(ctx context.Context, in models.MenuInsert) (*models.Menu, error) {
	m := &models.Menu{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO menus (title, slug, parent_id, "order", visible, icon, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+menuColumns,
		in.Title, in.Slug, in.ParentID, in.Order, in.IsVisible(), in.Icon, in.URL,
	).Scan(&m.ID, &m.Title, &m.Slug, &m.ParentID, &m.Order, &m.Visible, &m.Icon, &m.URL)
	if err != nil {
		return nil, wrap("create menu", err)
	}
	return m, nil
}

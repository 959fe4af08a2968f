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

// CommentStore handles reader comments.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore creates a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentColumns = `id, post_id, author_name, content, created_at`

// ListForPost returns the comments on a post, newest first. An unknown
// post yields an empty list.
func (s *CommentStore) ListForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+commentColumns+` FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC, id DESC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	items := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Create inserts a comment. A missing post yields an error wrapping
// ErrInvalidReference.
func (s *CommentStore) Create(ctx context.Context, in models.CommentInsert) (*models.Comment, error) {
	c := &models.Comment{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (post_id, author_name, content)
		VALUES ($1, $2, $3)
		RETURNING `+commentColumns,
		in.PostID, in.AuthorName, in.Content,
	).Scan(&c.ID, &c.PostID, &c.AuthorName, &c.Content, &c.CreatedAt)
	if err != nil {
		return nil, wrap("create comment", err)
	}
	return c, nil
}

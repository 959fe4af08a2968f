// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pristoncodex/internal/models"
)

// Listing limits for posts.
const (
	DefaultPostLimit = 10
	MaxPostLimit     = 100
	FeaturedLimit    = 4
)

// PostStore handles all post-related database operations. Every public
// listing (List, ListFeatured, Search) only returns published posts.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// PostFilter narrows List. A zero Limit means DefaultPostLimit; limits above
// MaxPostLimit are clamped.
type PostFilter struct {
	CategoryID *int64
	Limit      int
}

func (f PostFilter) limit() int {
	switch {
	case f.Limit <= 0:
		return DefaultPostLimit
	case f.Limit > MaxPostLimit:
		return MaxPostLimit
	}
	return f.Limit
}

const postColumns = `id, title, slug, content, excerpt, type, category_id, author_id,
	featured, views, likes, image_url, video_url, video_duration, read_time,
	meta_title, meta_description, published, created_at, updated_at`

func scanPost(row scanner) (*models.Post, error) {
	p := &models.Post{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Type, &p.CategoryID, &p.AuthorID,
		&p.Featured, &p.Views, &p.Likes, &p.ImageURL, &p.VideoURL, &p.VideoDuration, &p.ReadTime,
		&p.MetaTitle, &p.MetaDescription, &p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// queryPosts runs a multi-row post query and collects the results. The
// returned slice is never nil so it encodes as a JSON array.
func (s *PostStore) queryPosts(ctx context.Context, op, query string, args ...any) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// List returns published posts, newest first, optionally restricted to one
// category.
func (s *PostStore) List(ctx context.Context, f PostFilter) ([]models.Post, error) {
	return s.queryPosts(ctx, "list posts", `
		SELECT `+postColumns+` FROM posts
		WHERE published = TRUE
		  AND ($1::bigint IS NULL OR category_id = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, f.CategoryID, f.limit())
}

// ListFeatured returns up to FeaturedLimit published, featured posts,
// newest first.
func (s *PostStore) ListFeatured(ctx context.Context) ([]models.Post, error) {
	return s.queryPosts(ctx, "list featured posts", `
		SELECT `+postColumns+` FROM posts
		WHERE published = TRUE AND featured = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, FeaturedLimit)
}

// Search returns published posts whose title contains query, ignoring
// case, newest first. LIKE wildcards in query match literally. At most
// MaxPostLimit posts are returned.
func (s *PostStore) Search(ctx context.Context, query string, categoryID *int64) ([]models.Post, error) {
	return s.queryPosts(ctx, "search posts", `
		SELECT `+postColumns+` FROM posts
		WHERE published = TRUE
		  AND title ILIKE '%' || $1 || '%' ESCAPE '\'
		  AND ($2::bigint IS NULL OR category_id = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`, escapeLike(query), categoryID, MaxPostLimit)
}

// escapeLike escapes the LIKE metacharacters so the pattern matches them
// literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindByID retrieves a post by ID regardless of its published state.
// Returns nil if not found.
func (s *PostStore) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a post by slug regardless of its published state;
// callers serving public reads must check Published. Returns nil if not
// found.
func (s *PostStore) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with its generated ID. Views
// and likes start at zero.
func (s *PostStore) Create(ctx context.Context, in models.PostInsert) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, slug, content, excerpt, type, category_id, author_id,
		                   featured, image_url, video_url, video_duration, read_time,
		                   meta_title, meta_description, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING `+postColumns,
		in.Title, in.Slug, in.Content, in.Excerpt, in.Type, in.CategoryID, in.AuthorID,
		in.Featured, in.ImageURL, in.VideoURL, in.VideoDuration, in.ReadTime,
		in.MetaTitle, in.MetaDescription, in.Published,
	)
	p, err := scanPost(row)
	if err != nil {
		return nil, wrap("create post", err)
	}
	return p, nil
}

// Update applies a partial update in a single statement and bumps
// updated_at. Nil fields keep their stored value, so a nullable column
// cannot be cleared through Update. Returns nil if the post does not exist.
func (s *PostStore) Update(ctx context.Context, id int64, u models.PostUpdate) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE posts SET
			title            = COALESCE($2, title),
			slug             = COALESCE($3, slug),
			content          = COALESCE($4, content),
			excerpt          = COALESCE($5, excerpt),
			type             = COALESCE($6, type),
			category_id      = COALESCE($7, category_id),
			author_id        = COALESCE($8, author_id),
			featured         = COALESCE($9, featured),
			image_url        = COALESCE($10, image_url),
			video_url        = COALESCE($11, video_url),
			video_duration   = COALESCE($12, video_duration),
			read_time        = COALESCE($13, read_time),
			meta_title       = COALESCE($14, meta_title),
			meta_description = COALESCE($15, meta_description),
			published        = COALESCE($16, published),
			updated_at       = NOW()
		WHERE id = $1
		RETURNING `+postColumns,
		id, u.Title, u.Slug, u.Content, u.Excerpt, u.Type, u.CategoryID, u.AuthorID,
		u.Featured, u.ImageURL, u.VideoURL, u.VideoDuration, u.ReadTime,
		u.MetaTitle, u.MetaDescription, u.Published,
	)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("update post", err)
	}
	return p, nil
}

// IncrementViews atomically adds one view and returns the new total.
// Returns ErrNotFound if the post does not exist.
func (s *PostStore) IncrementViews(ctx context.Context, id int64) (int, error) {
	return increment(ctx, s.db, "increment post views",
		`UPDATE posts SET views = views + 1 WHERE id = $1 RETURNING views`, id)
}

// IncrementLikes atomically adds one like and returns the new total.
// Returns ErrNotFound if the post does not exist.
func (s *PostStore) IncrementLikes(ctx context.Context, id int64) (int, error) {
	return increment(ctx, s.db, "increment post likes",
		`UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id)
}

// Count returns the number of posts, published or not.
func (s *PostStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, "posts")
}

// increment runs a single-statement counter update that returns the new
// value. The read-modify-write happens inside PostgreSQL under the row
// lock, so concurrent calls never lose an increment.
func increment(ctx context.Context, db *sql.DB, op, query string, id int64) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, query, id).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s %d: %w", op, id, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

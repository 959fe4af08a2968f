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

// PopularLimit caps ListPopular.
const PopularLimit = 6

// DownloadStore handles downloadable files and their counters.
type DownloadStore struct {
	db *sql.DB
}

// NewDownloadStore creates a new DownloadStore.
func NewDownloadStore(db *sql.DB) *DownloadStore {
	return &DownloadStore{db: db}
}

const downloadColumns = `id, name, description, file_url, file_name, file_size,
	download_count, category_id, created_at`

func scanDownload(row scanner) (*models.Download, error) {
	d := &models.Download{}
	err := row.Scan(
		&d.ID, &d.Name, &d.Description, &d.FileURL, &d.FileName, &d.FileSize,
		&d.DownloadCount, &d.CategoryID, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DownloadStore) queryDownloads(ctx context.Context, op, query string, args ...any) ([]models.Download, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.Download{}
	for rows.Next() {
		d, err := scanDownload(rows)
		if err != nil {
			return nil, fmt.Errorf("scan download: %w", err)
		}
		items = append(items, *d)
	}
	return items, rows.Err()
}

// List returns downloads newest first, optionally restricted to one
// category.
func (s *DownloadStore) List(ctx context.Context, categoryID *int64) ([]models.Download, error) {
	return s.queryDownloads(ctx, "list downloads", `
		SELECT `+downloadColumns+` FROM downloads
		WHERE ($1::bigint IS NULL OR category_id = $1)
		ORDER BY created_at DESC, id DESC
	`, categoryID)
}

// ListPopular returns the PopularLimit most downloaded files.
func (s *DownloadStore) ListPopular(ctx context.Context) ([]models.Download, error) {
	return s.queryDownloads(ctx, "list popular downloads", `
		SELECT `+downloadColumns+` FROM downloads
		ORDER BY download_count DESC, id
		LIMIT $1
	`, PopularLimit)
}

// Create inserts a download with a zero counter.
func (s *DownloadStore) Create(ctx context.Context, in models.DownloadInsert) (*models.Download, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO downloads (name, description, file_url, file_name, file_size, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+downloadColumns,
		in.Name, in.Description, in.FileURL, in.FileName, in.FileSize, in.CategoryID,
	)
	d, err := scanDownload(row)
	if err != nil {
		return nil, wrap("create download", err)
	}
	return d, nil
}

// IncrementCount atomically adds one to the download counter and returns
// the new total. Returns ErrNotFound if the download does not exist.
func (s *DownloadStore) IncrementCount(ctx context.Context, id int64) (int, error) {
	return increment(ctx, s.db, "increment download count",
		`UPDATE downloads SET download_count = download_count + 1 WHERE id = $1 RETURNING download_count`, id)
}

// Count returns the number of downloads.
func (s *DownloadStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, "downloads")
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pristoncodex/internal/models"
)

// counter is a store that can report its row count.
type counter interface {
	Count(ctx context.Context) (int64, error)
}

// StatisticsStore computes site-wide totals from the entity stores.
// Results are always read fresh from the database.
type StatisticsStore struct {
	posts     counter
	downloads counter
	users     counter
}

// NewStatisticsStore creates a new StatisticsStore.
func NewStatisticsStore(posts *PostStore, downloads *DownloadStore, users *UserStore) *StatisticsStore {
	return &StatisticsStore{posts: posts, downloads: downloads, users: users}
}

// Get runs the three counts concurrently. If any of them fails the whole
// call fails and the remaining queries are cancelled.
func (s *StatisticsStore) Get(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	g, ctx := errgroup.WithContext(ctx)

	targets := []struct {
		src counter
		dst *int64
	}{
		{s.posts, &stats.TotalPosts},
		{s.downloads, &stats.TotalDownloads},
		{s.users, &stats.TotalUsers},
	}
	for _, t := range targets {
		t := t
		g.Go(func() error {
			n, err := t.src.Count(ctx)
			if err != nil {
				return err
			}
			*t.dst = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	return &stats, nil
}

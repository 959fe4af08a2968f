// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"testing"

	"pristoncodex/internal/models"
)

func TestCommentStoreCreateAndList(t *testing.T) {
	db := testDB(t)
	s := NewCommentStore(db)
	ctx := context.Background()

	p := createPost(t, db, nil, true, false)

	for _, content := range []string{"primeiro", "segundo"} {
		if _, err := s.Create(ctx, models.CommentInsert{PostID: p.ID, AuthorName: "Ana", Content: content}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := s.ListForPost(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListForPost: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("comments: got %d, want 2", len(list))
	}
	if list[0].Content != "segundo" {
		t.Errorf("expected newest first, got %q", list[0].Content)
	}
	for _, c := range list {
		if c.PostID != p.ID {
			t.Errorf("comment %d belongs to post %d", c.ID, c.PostID)
		}
	}

	empty, err := s.ListForPost(ctx, -1)
	if err != nil {
		t.Fatalf("ListForPost (unknown post): %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil list, got %v", empty)
	}
}

func TestCommentStoreUnknownPost(t *testing.T) {
	db := testDB(t)
	s := NewCommentStore(db)

	_, err := s.Create(context.Background(), models.CommentInsert{PostID: -1, AuthorName: "Ana", Content: "x"})
	if !errors.Is(err, ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Comment is a reader comment on a post. AuthorName is free text and is
// not bound to a registered user.
type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"postId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CommentInsert is the client-supplied shape for a comment. PostID comes
// from the request path and overrides any value in the body.
type CommentInsert struct {
	PostID     int64  `json:"postId,omitempty"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
}

// Validate checks the comment payload.
func (c *CommentInsert) Validate() error {
	if c.PostID <= 0 {
		return invalid("postId", "postId must be a positive integer")
	}
	return firstError(
		requireText("authorName", c.AuthorName, maxNameLen),
		requireText("content", c.Content, maxCommentLen),
	)
}

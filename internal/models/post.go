// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Post types used by the front end. The column is free text; these are the
// values the site knows how to render.
const (
	PostTypeTutorial = "tutorial"
	PostTypeArticle  = "artigo"
	PostTypeVideo    = "video"
)

// Post is an article, guide or video. Only published posts are visible in
// public listings, search and the featured strip.
type Post struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	Excerpt         string    `json:"excerpt"`
	Type            string    `json:"type"`
	CategoryID      *int64    `json:"categoryId"`
	AuthorID        *int64    `json:"authorId"`
	Featured        bool      `json:"featured"`
	Views           int       `json:"views"`
	Likes           int       `json:"likes"`
	ImageURL        *string   `json:"imageUrl"`
	VideoURL        *string   `json:"videoUrl"`
	VideoDuration   *string   `json:"videoDuration"`
	ReadTime        *int      `json:"readTime"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PostInsert is the client-supplied shape for creating a post. Views,
// likes and timestamps are server-assigned.
type PostInsert struct {
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Content         string  `json:"content"`
	Excerpt         string  `json:"excerpt"`
	Type            string  `json:"type"`
	CategoryID      *int64  `json:"categoryId"`
	AuthorID        *int64  `json:"authorId"`
	Featured        bool    `json:"featured"`
	ImageURL        *string `json:"imageUrl"`
	VideoURL        *string `json:"videoUrl"`
	VideoDuration   *string `json:"videoDuration"`
	ReadTime        *int    `json:"readTime"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	Published       bool    `json:"published"`
}

// Validate checks the post payload.
func (p *PostInsert) Validate() error {
	var readTime error
	if p.ReadTime != nil {
		readTime = nonNegative("readTime", *p.ReadTime)
	}
	return firstError(
		requireText("title", p.Title, maxTitleLen),
		requireSlug("slug", p.Slug),
		requireText("content", p.Content, maxContentLen),
		requireText("excerpt", p.Excerpt, maxExcerptLen),
		requireText("type", p.Type, maxShortLen),
		optionalID("categoryId", p.CategoryID),
		optionalID("authorId", p.AuthorID),
		optionalText("imageUrl", p.ImageURL, maxURLLen),
		optionalText("videoUrl", p.VideoURL, maxURLLen),
		optionalText("videoDuration", p.VideoDuration, maxShortLen),
		readTime,
		optionalText("metaTitle", p.MetaTitle, maxTitleLen),
		optionalText("metaDescription", p.MetaDescription, maxMetaDescLen),
	)
}

// PostUpdate is a partial post. Nil fields are left unchanged.
type PostUpdate struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	Excerpt         *string `json:"excerpt"`
	Type            *string `json:"type"`
	CategoryID      *int64  `json:"categoryId"`
	AuthorID        *int64  `json:"authorId"`
	Featured        *bool   `json:"featured"`
	ImageURL        *string `json:"imageUrl"`
	VideoURL        *string `json:"videoUrl"`
	VideoDuration   *string `json:"videoDuration"`
	ReadTime        *int    `json:"readTime"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	Published       *bool   `json:"published"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u *PostUpdate) IsEmpty() bool {
	return *u == PostUpdate{}
}

// Validate checks every field present in the update.
func (u *PostUpdate) Validate() error {
	if u.IsEmpty() {
		return invalid("", "update must set at least one field")
	}
	errs := []error{
		optionalID("categoryId", u.CategoryID),
		optionalID("authorId", u.AuthorID),
		optionalText("imageUrl", u.ImageURL, maxURLLen),
		optionalText("videoUrl", u.VideoURL, maxURLLen),
		optionalText("videoDuration", u.VideoDuration, maxShortLen),
		optionalText("metaTitle", u.MetaTitle, maxTitleLen),
		optionalText("metaDescription", u.MetaDescription, maxMetaDescLen),
	}
	if u.Title != nil {
		errs = append(errs, requireText("title", *u.Title, maxTitleLen))
	}
	if u.Slug != nil {
		errs = append(errs, requireSlug("slug", *u.Slug))
	}
	if u.Content != nil {
		errs = append(errs, requireText("content", *u.Content, maxContentLen))
	}
	if u.Excerpt != nil {
		errs = append(errs, requireText("excerpt", *u.Excerpt, maxExcerptLen))
	}
	if u.Type != nil {
		errs = append(errs, requireText("type", *u.Type, maxShortLen))
	}
	if u.ReadTime != nil {
		errs = append(errs, nonNegative("readTime", *u.ReadTime))
	}
	return firstError(errs...)
}

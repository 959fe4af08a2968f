// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"strings"

	"pristoncodex/internal/cache"
	"pristoncodex/internal/models"
	"pristoncodex/internal/slug"
)

// Admin serves the content-creation endpoints used by the admin panel.
type Admin struct {
	stores   Stores
	cache    *cache.ResponseCache
	uploader Uploader
}

// NewAdmin creates a new Admin handler group. cache and uploader may be
// nil; uploads then answer 503.
func NewAdmin(stores Stores, responseCache *cache.ResponseCache, uploader Uploader) *Admin {
	return &Admin{stores: stores, cache: responseCache, uploader: uploader}
}

// fillSlug derives a slug from title when the client sent none.
func fillSlug(s *string, title string) {
	if strings.TrimSpace(*s) == "" {
		*s = slug.Generate(title)
	}
}

// checkCategory rejects a categoryId that names no category. The foreign
// key still backs this up if the row disappears in between.
func (a *Admin) checkCategory(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	cat, err := a.stores.Categories.FindByID(ctx, *id)
	if err != nil {
		return err
	}
	if cat == nil {
		return badRequest("category not found")
	}
	return nil
}

// CreateCategory adds a category.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in models.CategoryInsert
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, "create category", err)
		return
	}
	fillSlug(&in.Slug, in.Name)
	if err := in.Validate(); err != nil {
		writeError(w, r, "create category", err)
		return
	}

	cat, err := a.stores.Categories.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, "create category", err)
		return
	}
	a.cache.Invalidate(r.Context(), cache.KeyCategories)
	writeJSON(w, http.StatusCreated, cat)
}

// CreatePost adds a post. Unpublished posts stay hidden from listings.
func (a *Admin) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in models.PostInsert
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, "create post", err)
		return
	}
	fillSlug(&in.Slug, in.Title)
	if err := in.Validate(); err != nil {
		writeError(w, r, "create post", err)
		return
	}
	if err := a.checkCategory(r.Context(), in.CategoryID); err != nil {
		writeError(w, r, "create post", err)
		return
	}

	post, err := a.stores.Posts.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, "create post", err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// UpdatePost applies a partial update to a post.
func (a *Admin) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "update post", err)
		return
	}

	var in models.PostUpdate
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, "update post", err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, r, "update post", err)
		return
	}
	if err := a.checkCategory(r.Context(), in.CategoryID); err != nil {
		writeError(w, r, "update post", err)
		return
	}

	post, err := a.stores.Posts.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, r, "update post", err)
		return
	}
	if post == nil {
		writeMessage(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// CreateDownload adds a download entry. The file itself is either hosted
// elsewhere or was stored first through UploadDownload.
func (a *Admin) CreateDownload(w http.ResponseWriter, r *http.Request) {
	var in models.DownloadInsert
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, "create download", err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, r, "create download", err)
		return
	}
	if err := a.checkCategory(r.Context(), in.CategoryID); err != nil {
		writeError(w, r, "create download", err)
		return
	}

	d, err := a.stores.Downloads.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, "create download", err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

// CreateMenu adds a navigation entry.
func (a *Admin) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var in models.MenuInsert
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, "create menu", err)
		return
	}
	fillSlug(&in.Slug, in.Title)
	if err := in.Validate(); err != nil {
		writeError(w, r, "create menu", err)
		return
	}

	m, err := a.stores.Menus.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, "create menu", err)
		return
	}
	a.cache.Invalidate(r.Context(), cache.KeyMenus, cache.KeyMenuTree)
	writeJSON(w, http.StatusCreated, m)
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pristoncodex/internal/cache"
	"pristoncodex/internal/markdown"
	"pristoncodex/internal/models"
	"pristoncodex/internal/store"
)

// Stores bundles the data-access layer used by the handler groups.
type Stores struct {
	Categories *store.CategoryStore
	Posts      *store.PostStore
	Comments   *store.CommentStore
	Downloads  *store.DownloadStore
	Menus      *store.MenuStore
	Users      *store.UserStore
	Statistics *store.StatisticsStore
}

// Public serves the read side of the site plus the anonymous writes
// (comments, likes, download counters).
type Public struct {
	stores Stores
	cache  *cache.ResponseCache
}

// NewPublic creates a new Public handler group. cache may be nil.
func NewPublic(stores Stores, responseCache *cache.ResponseCache) *Public {
	return &Public{stores: stores, cache: responseCache}
}

// postDetail is a post with its body rendered to HTML.
type postDetail struct {
	models.Post
	ContentHTML string `json:"contentHtml"`
}

// cached serves key from the response cache, falling back to load and
// storing its encoded result.
func (p *Public) cached(w http.ResponseWriter, r *http.Request, key, op string, load func(context.Context) (any, error)) {
	ctx := r.Context()
	if body, ok := p.cache.Get(ctx, key); ok {
		writeRaw(w, http.StatusOK, body)
		return
	}

	data, err := load(ctx)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	body, err := json.Marshal(data)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	p.cache.Set(ctx, key, body)
	writeRaw(w, http.StatusOK, body)
}

// Categories lists every category in display order.
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.KeyCategories, "list categories", func(ctx context.Context) (any, error) {
		return p.stores.Categories.List(ctx)
	})
}

// Category returns a single category by slug.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	cat, err := p.stores.Categories.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, "find category", err)
		return
	}
	if cat == nil {
		writeMessage(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// Posts lists published posts, newest first.
func (p *Public) Posts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, "list posts", err)
		return
	}
	categoryID, err := queryID(r, "categoryId")
	if err != nil {
		writeError(w, r, "list posts", err)
		return
	}

	posts, err := p.stores.Posts.List(r.Context(), store.PostFilter{CategoryID: categoryID, Limit: limit})
	if err != nil {
		writeError(w, r, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// FeaturedPosts lists the published featured posts.
func (p *Public) FeaturedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := p.stores.Posts.ListFeatured(r.Context())
	if err != nil {
		writeError(w, r, "list featured posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// SearchPosts matches q against the titles of published posts.
func (p *Public) SearchPosts(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeMessage(w, http.StatusBadRequest, "search query is required")
		return
	}
	categoryID, err := queryID(r, "categoryId")
	if err != nil {
		writeError(w, r, "search posts", err)
		return
	}

	posts, err := p.stores.Posts.Search(r.Context(), q, categoryID)
	if err != nil {
		writeError(w, r, "search posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// Post returns a published post by slug and counts the view.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	post, err := p.stores.Posts.FindBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, "find post", err)
		return
	}
	if post == nil || !post.Published {
		writeMessage(w, http.StatusNotFound, "post not found")
		return
	}

	views, err := p.stores.Posts.IncrementViews(ctx, post.ID)
	if err != nil {
		writeError(w, r, "increment post views", err)
		return
	}
	post.Views = views

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		writeError(w, r, "render post", err)
		return
	}
	writeJSON(w, http.StatusOK, postDetail{Post: *post, ContentHTML: html})
}

// LikePost increments a post's like counter and returns the new total.
func (p *Public) LikePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "like post", err)
		return
	}

	likes, err := p.stores.Posts.IncrementLikes(r.Context(), id)
	if err != nil {
		writeError(w, r, "like post", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

// Comments lists a post's comments, newest first.
func (p *Public) Comments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, "list comments", err)
		return
	}

	comments, err := p.stores.Comments.ListForPost(r.Context(), postID)
	if err != nil {
		writeError(w, r, "list comments", err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// CreateComment adds a comment to the post named in the path. An unknown
// post answers 404.
func (p *Public) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, "create comment", err)
		return
	}

	var in models.CommentInsert
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, "create comment", err)
		return
	}
	in.PostID = postID
	if err := in.Validate(); err != nil {
		writeError(w, r, "create comment", err)
		return
	}

	ctx := r.Context()
	post, err := p.stores.Posts.FindByID(ctx, postID)
	if err != nil {
		writeError(w, r, "create comment", err)
		return
	}
	if post == nil {
		writeMessage(w, http.StatusNotFound, "post not found")
		return
	}

	comment, err := p.stores.Comments.Create(ctx, in)
	if err != nil {
		writeError(w, r, "create comment", err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// Downloads lists downloads, optionally filtered by category.
func (p *Public) Downloads(w http.ResponseWriter, r *http.Request) {
	categoryID, err := queryID(r, "categoryId")
	if err != nil {
		writeError(w, r, "list downloads", err)
		return
	}

	downloads, err := p.stores.Downloads.List(r.Context(), categoryID)
	if err != nil {
		writeError(w, r, "list downloads", err)
		return
	}
	writeJSON(w, http.StatusOK, downloads)
}

// PopularDownloads lists the most downloaded files.
func (p *Public) PopularDownloads(w http.ResponseWriter, r *http.Request) {
	downloads, err := p.stores.Downloads.ListPopular(r.Context())
	if err != nil {
		writeError(w, r, "list popular downloads", err)
		return
	}
	writeJSON(w, http.StatusOK, downloads)
}

// IncrementDownload counts one download of a file.
func (p *Public) IncrementDownload(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "increment download", err)
		return
	}

	if _, err := p.stores.Downloads.IncrementCount(r.Context(), id); err != nil {
		writeError(w, r, "increment download", err)
		return
	}
	writeMessage(w, http.StatusOK, "Download count incremented")
}

// Menus lists visible menu entries as a flat list.
func (p *Public) Menus(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.KeyMenus, "list menus", func(ctx context.Context) (any, error) {
		return p.stores.Menus.List(ctx)
	})
}

// MenuTree lists visible menu entries nested by parent.
func (p *Public) MenuTree(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.KeyMenuTree, "list menu tree", func(ctx context.Context) (any, error) {
		menus, err := p.stores.Menus.List(ctx)
		if err != nil {
			return nil, err
		}
		tree := models.BuildMenuTree(menus)
		if tree == nil {
			tree = []models.Menu{}
		}
		return tree, nil
	})
}

// Statistics returns the site totals. Never cached.
func (p *Public) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := p.stores.Statistics.Get(r.Context())
	if err != nil {
		writeError(w, r, "get statistics", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

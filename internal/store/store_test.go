// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pristoncodex/internal/database"
	"pristoncodex/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "pristoncodex")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "pristoncodex")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// unique returns prefix plus a random suffix, usable as a slug, username or
// email local part. Tests share one database, so fixtures never collide.
func unique(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Row removal helpers. Call in t.Cleanup(), children before parents.

func cleanUsers(t *testing.T, db *sql.DB, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		db.Exec("UPDATE posts SET author_id = NULL WHERE author_id = $1", id)
		db.Exec("DELETE FROM users WHERE id = $1", id)
	}
}

func cleanCategories(t *testing.T, db *sql.DB, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		db.Exec("DELETE FROM categories WHERE id = $1", id)
	}
}

func cleanPosts(t *testing.T, db *sql.DB, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		db.Exec("DELETE FROM comments WHERE post_id = $1", id)
		db.Exec("DELETE FROM posts WHERE id = $1", id)
	}
}

func cleanDownloads(t *testing.T, db *sql.DB, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		db.Exec("DELETE FROM downloads WHERE id = $1", id)
	}
}

func cleanMenus(t *testing.T, db *sql.DB, ids ...int64) {
	t.Helper()
	// Delete in reverse so children go before their parents.
	for i := len(ids) - 1; i >= 0; i-- {
		db.Exec("DELETE FROM menus WHERE id = $1", ids[i])
	}
}

// createCategory inserts a category with a unique slug and schedules its
// removal.
func createCategory(t *testing.T, db *sql.DB) *models.Category {
	t.Helper()
	c, err := NewCategoryStore(db).Create(context.Background(), models.CategoryInsert{
		Name:  "Categoria de teste",
		Slug:  unique("cat"),
		Icon:  "book",
		Color: "blue",
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	t.Cleanup(func() { cleanCategories(t, db, c.ID) })
	return c
}

// createPost inserts a post in categoryID and schedules its removal.
// Cleanups run LIFO, so posts are removed before their category.
func createPost(t *testing.T, db *sql.DB, categoryID *int64, published, featured bool) *models.Post {
	t.Helper()
	p, err := NewPostStore(db).Create(context.Background(), models.PostInsert{
		Title:      "Post " + unique("t"),
		Slug:       unique("post"),
		Content:    "# Conteúdo",
		Excerpt:    "Resumo",
		Type:       models.PostTypeArticle,
		CategoryID: categoryID,
		Published:  published,
		Featured:   featured,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	t.Cleanup(func() { cleanPosts(t, db, p.ID) })
	return p
}

func TestClassifyConstraintField(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"users_email_key", "email"},
		{"users_username_key", "username"},
		{"categories_slug_key", "slug"},
		{"posts_slug_key", "slug"},
		{"users_permission_level_check", ""},
		{"", ""},
	}
	for _, tt := range tests {
		e := &ConstraintError{Kind: ErrConflict, Constraint: tt.constraint}
		if got := e.Field(); got != tt.want {
			t.Errorf("Field(%q) = %q, want %q", tt.constraint, got, tt.want)
		}
	}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct{ in, want string }{
		{"guia", "guia"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`c:\x`, `c:\\x`},
	}
	for _, tt := range tests {
		if got := escapeLike(tt.in); got != tt.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPostFilterLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, DefaultPostLimit},
		{-5, DefaultPostLimit},
		{3, 3},
		{MaxPostLimit, MaxPostLimit},
		{MaxPostLimit + 1, MaxPostLimit},
	}
	for _, tt := range tests {
		if got := (PostFilter{Limit: tt.in}).limit(); got != tt.want {
			t.Errorf("limit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

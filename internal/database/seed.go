package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Default development credentials created by Seed.
const (
	seedAdminEmail    = "admin@pristoncodex.local"
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
)

type seedCategory struct {
	name, slug, description, icon, color string
}

var seedCategories = []seedCategory{
	{"Iniciante", "iniciante", "Primeiros passos no jogo", "seedling", "text-green-400"},
	{"Intermediário", "intermediario", "Evolução e equipamentos", "sword", "text-blue-400"},
	{"Avançado", "avancado", "Estratégias para jogadores experientes", "crown", "text-purple-400"},
	{"Desenvolvimento", "desenvolvimento", "Servidores, ferramentas e modding", "code", "text-amber-400"},
}

type seedMenu struct {
	title, slug, url, icon string
}

var seedMenus = []seedMenu{
	{"Início", "inicio", "/", "home"},
	{"Guias", "guias", "/guias", "book"},
	{"Vídeos", "videos", "/videos", "video"},
	{"Downloads", "downloads", "/downloads", "download"},
	{"Comunidade", "comunidade", "/comunidade", "users"},
}

// Seed populates the database with initial development data: an admin
// user, the starter categories and the top-level menus. Each table is
// only seeded while it is empty, so Seed is safe to call on every start.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedCategoryRows(db); err != nil {
		return err
	}
	return seedMenuRows(db)
}

func tableEmpty(db *sql.DB, table string) (bool, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return false, fmt.Errorf("seed check %s: %w", table, err)
	}
	return count == 0, nil
}

func seedAdmin(db *sql.DB) error {
	empty, err := tableEmpty(db, "users")
	if err != nil {
		return err
	}
	if !empty {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (username, email, password_hash, permission_level)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT DO NOTHING
	`, seedAdminUsername, seedAdminEmail, string(hash))
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", seedAdminEmail,
		"password", seedAdminPassword,
	)
	return nil
}

func seedCategoryRows(db *sql.DB) error {
	empty, err := tableEmpty(db, "categories")
	if err != nil || !empty {
		return err
	}

	for i, c := range seedCategories {
		_, err := db.Exec(`
			INSERT INTO categories (name, slug, description, icon, color, "order")
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (slug) DO NOTHING
		`, c.name, c.slug, c.description, c.icon, c.color, i)
		if err != nil {
			return fmt.Errorf("seed insert category %s: %w", c.slug, err)
		}
	}

	slog.Info("database seeded with starter categories", "count", len(seedCategories))
	return nil
}

func seedMenuRows(db *sql.DB) error {
	empty, err := tableEmpty(db, "menus")
	if err != nil || !empty {
		return err
	}

	for i, m := range seedMenus {
		_, err := db.Exec(`
			INSERT INTO menus (title, slug, url, icon, "order", visible)
			VALUES ($1, $2, $3, $4, $5, TRUE)
		`, m.title, m.slug, m.url, m.icon, i)
		if err != nil {
			return fmt.Errorf("seed insert menu %s: %w", m.slug, err)
		}
	}

	slog.Info("database seeded with menus", "count", len(seedMenus))
	return nil
}

// Package store provides database access methods for all Priston Codex
// entities. Each store struct wraps a *sql.DB and exposes typed query
// methods; no other package issues SQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"pristoncodex/internal/models"
)

// UserStore handles all user-related database operations.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, username, email, password_hash, permission_level, created_at`

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.PermissionLevel, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// findOne runs a single-row user query. Returns nil if no row matches.
func (s *UserStore) findOne(ctx context.Context, op, where string, arg any) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// FindByID retrieves a user by ID. Returns nil if not found.
func (s *UserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return s.findOne(ctx, "find user by id", "id = $1", id)
}

// FindByUsername retrieves a user by username. Returns nil if not found.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, "find user by username", "username = $1", username)
}

// FindByEmail retrieves a user by email address. Emails are stored
// normalized, so the lookup normalizes its argument too. Returns nil if
// not found.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, "find user by email", "email = $1", models.NormalizeEmail(email))
}

// Create inserts a new user with a bcrypt-hashed password. A duplicate
// username or email yields an error wrapping ErrConflict; an unknown
// permission level one wrapping ErrInvalidValue.
func (s *UserStore) Create(ctx context.Context, in models.UserInsert) (*models.User, error) {
	level := in.PermissionLevel
	if level == "" {
		level = models.PermissionUser
	}
	if !level.Valid() {
		return nil, fmt.Errorf("create user: %w", &ConstraintError{Kind: ErrInvalidValue, Constraint: "users_permission_level_check"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, permission_level)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		in.Username, models.NormalizeEmail(in.Email), string(hash), level,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("create user", err)
	}
	return u, nil
}

// Authenticate looks up a user by email and verifies the password.
// Returns nil (and no error) when the email is unknown or the password
// does not match, so callers cannot tell the two apart.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, err
	}
	if !s.CheckPassword(u, password) {
		return nil, nil
	}
	return u, nil
}

// CheckPassword verifies a plaintext password against the user's stored hash.
func (s *UserStore) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Count returns the number of registered users.
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, "users")
}

// count returns COUNT(*) for a table. The table name is always a constant
// supplied by this package.
func count(ctx context.Context, db *sql.DB, table string) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

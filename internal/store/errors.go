// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned (wrapped) by store methods. Callers classify
// them with errors.Is.
var (
	// ErrNotFound is returned by write operations that target a missing row.
	// Read operations signal a miss with a nil result instead.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("conflict")

	// ErrInvalidReference is returned when a write points at a missing
	// parent row (foreign key violation).
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidValue is returned when a write violates a check constraint.
	ErrInvalidValue = errors.New("invalid value")
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// ConstraintError is a classified integrity violation. It unwraps to one of
// the sentinel errors above so errors.Is keeps working.
type ConstraintError struct {
	Kind       error
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() error {
	return e.Kind
}

// Field returns the column a unique constraint guards, derived from the
// "<table>_<column>_key" naming used by the migrations. It returns "" when
// the name does not follow that shape.
func (e *ConstraintError) Field() string {
	name, ok := strings.CutSuffix(e.Constraint, "_key")
	if !ok {
		return ""
	}
	_, column, ok := strings.Cut(name, "_")
	if !ok {
		return ""
	}
	return column
}

// classify converts integrity violations reported by PostgreSQL into a
// *ConstraintError and returns every other error unchanged.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	var kind error
	switch pgErr.Code {
	case codeUniqueViolation:
		kind = ErrConflict
	case codeForeignKeyViolation:
		kind = ErrInvalidReference
	case codeCheckViolation:
		kind = ErrInvalidValue
	default:
		return err
	}
	return &ConstraintError{Kind: kind, Constraint: pgErr.ConstraintName}
}

// wrap annotates err with the operation name after classifying it.
func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, classify(err))
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

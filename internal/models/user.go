// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the entities persisted by the data-access layer,
// the insert shapes clients may submit for each of them and the validation
// rules applied before any store call.
package models

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// PermissionLevel represents a user's permission level in the system.
type PermissionLevel string

const (
	PermissionAdmin  PermissionLevel = "admin"
	PermissionEditor PermissionLevel = "editor"
	PermissionUser   PermissionLevel = "user"
)

// Valid reports whether p is one of the known permission levels.
func (p PermissionLevel) Valid() bool {
	switch p {
	case PermissionAdmin, PermissionEditor, PermissionUser:
		return true
	}
	return false
}

// User is a registered community member.
type User struct {
	ID              int64           `json:"id"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	PasswordHash    string          `json:"-"` // Never serialize the hash
	PermissionLevel PermissionLevel `json:"permissionLevel"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// UserInsert is the shape used to create a user. Password is plaintext and
// is hashed by the store before it reaches the database.
type UserInsert struct {
	Username        string
	Email           string
	Password        string
	PermissionLevel PermissionLevel
}

// Registration is the public sign-up payload. Permission level is not
// client-controlled; new accounts are always created as PermissionUser.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt ignores anything beyond 72 bytes
)

// Normalize trims the username and lowercases the email so uniqueness
// checks are not defeated by casing or stray whitespace.
func (r *Registration) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = NormalizeEmail(r.Email)
}

// Validate checks the registration payload.
func (r *Registration) Validate() error {
	n := utf8.RuneCountInString(r.Username)
	if n == 0 {
		return invalid("username", "username is required")
	}
	if n < minUsernameLen || n > maxUsernameLen {
		return invalid("username", "username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < minPasswordLen {
		return invalid("password", "password must be at least %d characters", minPasswordLen)
	}
	if len(r.Password) > maxPasswordLen {
		return invalid("password", "password is too long (max %d bytes)", maxPasswordLen)
	}
	return nil
}

// Insert converts the registration into a store insert shape.
func (r *Registration) Insert() UserInsert {
	return UserInsert{
		Username:        r.Username,
		Email:           r.Email,
		Password:        r.Password,
		PermissionLevel: PermissionUser,
	}
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate requires both fields to be present.
func (c *Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return invalid("email", "email and password are required")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return invalid("email", "email is required")
	}
	if err := maxLength("email", email, maxNameLen); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email", "email is not a valid address")
	}
	return nil
}

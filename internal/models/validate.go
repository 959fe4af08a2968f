// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field limits shared by the Insert and Update shapes.
const (
	maxTitleLen    = 300
	maxSlugLen     = 300
	maxContentLen  = 100_000
	maxExcerptLen  = 1_000
	maxMetaDescLen = 500
	maxURLLen      = 2_048
	maxShortLen    = 100
	maxNameLen     = 200
	maxCommentLen  = 5_000
)

// slugPattern accepts lowercase words joined by single hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError reports the first field of a payload that failed
// validation. Its message is safe to return to API clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// firstError returns the first non-nil error, or nil.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func requireText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "%s is required", field)
	}
	return maxLength(field, value, max)
}

func optionalText(field string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return maxLength(field, *value, max)
}

func maxLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return invalid(field, "%s is too long (max %d characters)", field, max)
	}
	return nil
}

func requireSlug(field, value string) error {
	if value == "" {
		return invalid(field, "%s is required", field)
	}
	if err := maxLength(field, value, maxSlugLen); err != nil {
		return err
	}
	if !slugPattern.MatchString(value) {
		return invalid(field, "%s may only contain lowercase letters, digits and single hyphens", field)
	}
	return nil
}

func nonNegative(field string, value int) error {
	if value < 0 {
		return invalid(field, "%s must not be negative", field)
	}
	return nil
}

func optionalID(field string, id *int64) error {
	if id != nil && *id <= 0 {
		return invalid(field, "%s must be a positive integer", field)
	}
	return nil
}

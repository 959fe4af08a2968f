// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category groups posts and downloads. Categories are listed by Order.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Order       int     `json:"order"`
}

// CategoryInsert is the client-supplied shape for creating a category.
type CategoryInsert struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Order       int     `json:"order"`
}

// Validate checks the category payload.
func (c *CategoryInsert) Validate() error {
	return firstError(
		requireText("name", c.Name, maxTitleLen),
		requireSlug("slug", c.Slug),
		optionalText("description", c.Description, maxExcerptLen),
		requireText("icon", c.Icon, maxShortLen),
		requireText("color", c.Color, maxShortLen),
		nonNegative("order", c.Order),
	)
}

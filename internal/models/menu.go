// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Menu is a navigation entry. ParentID forms an adjacency list; nesting is
// only materialised on request by BuildMenuTree.
type Menu struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	ParentID *int64  `json:"parentId"`
	Order    int     `json:"order"`
	Visible  bool    `json:"visible"`
	Icon     *string `json:"icon"`
	URL      *string `json:"url"`

	// Virtual field populated by BuildMenuTree.
	Children []Menu `json:"children,omitempty"`
}

// MenuInsert is the client-supplied shape for creating a menu entry.
// Visible defaults to true when omitted.
type MenuInsert struct {
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	ParentID *int64  `json:"parentId"`
	Order    int     `json:"order"`
	Visible  *bool   `json:"visible"`
	Icon     *string `json:"icon"`
	URL      *string `json:"url"`
}

// IsVisible resolves the Visible default.
func (m *MenuInsert) IsVisible() bool {
	return m.Visible == nil || *m.Visible
}

// Validate checks the menu payload.
func (m *MenuInsert) Validate() error {
	return firstError(
		requireText("title", m.Title, maxTitleLen),
		requireText("slug", m.Slug, maxSlugLen),
		optionalID("parentId", m.ParentID),
		nonNegative("order", m.Order),
		optionalText("icon", m.Icon, maxShortLen),
		optionalText("url", m.URL, maxURLLen),
	)
}

// BuildMenuTree nests a flat menu list by ParentID, preserving the input
// order at every level. Entries whose parent is absent from the list (or
// that point at themselves) are kept at the root. Entries that are only
// reachable through a parent cycle are dropped.
func BuildMenuTree(flat []Menu) []Menu {
	present := make(map[int64]bool, len(flat))
	for _, m := range flat {
		present[m.ID] = true
	}

	var roots []Menu
	for _, m := range flat {
		if m.ParentID == nil || *m.ParentID == m.ID || !present[*m.ParentID] {
			m.Children = menuChildren(flat, m.ID)
			roots = append(roots, m)
		}
	}
	return roots
}

// menuChildren recursively collects the children of parentID.
func menuChildren(flat []Menu, parentID int64) []Menu {
	var result []Menu
	for _, m := range flat {
		if m.ParentID != nil && *m.ParentID == parentID && m.ID != parentID {
			m.Children = menuChildren(flat, m.ID)
			result = append(result, m)
		}
	}
	return result
}

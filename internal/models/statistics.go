// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Statistics holds the site-wide totals shown in the sidebar and admin panel.
type Statistics struct {
	TotalPosts     int64 `json:"totalPosts"`
	TotalDownloads int64 `json:"totalDownloads"`
	TotalUsers     int64 `json:"totalUsers"`
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Download is a downloadable file (client, patch, tool). FileSize is a
// human-readable label such as "10 MB", not a byte count.
type Download struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	FileURL       string    `json:"fileUrl"`
	FileName      string    `json:"fileName"`
	FileSize      string    `json:"fileSize"`
	DownloadCount int       `json:"downloadCount"`
	CategoryID    *int64    `json:"categoryId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DownloadInsert is the client-supplied shape for creating a download.
type DownloadInsert struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	FileName    string `json:"fileName"`
	FileSize    string `json:"fileSize"`
	CategoryID  *int64 `json:"categoryId"`
}

// Validate checks the download payload.
func (d *DownloadInsert) Validate() error {
	return firstError(
		requireText("name", d.Name, maxTitleLen),
		requireText("description", d.Description, maxExcerptLen),
		requireText("fileUrl", d.FileURL, maxURLLen),
		requireText("fileName", d.FileName, maxTitleLen),
		requireText("fileSize", d.FileSize, maxShortLen),
		optionalID("categoryId", d.CategoryID),
	)
}

// UploadedFile describes an object stored for a download. The fields map
// directly onto DownloadInsert.
type UploadedFile struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileSize string `json:"fileSize"`
}

package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	"pristoncodex/internal/middleware"
	"pristoncodex/internal/models"
	"pristoncodex/internal/storage"
)

// maxUploadSize is the largest download file accepted (50 MB).
const maxUploadSize = 50 << 20

// Uploader stores download files. *storage.Client implements it.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	FileURL(key string) string
}

// allowedDownloadTypes lists the sniffed content types accepted for
// downloads. Executables and 7z archives sniff as octet-stream.
var allowedDownloadTypes = map[string]bool{
	"application/zip":              true,
	"application/x-rar-compressed": true,
	"application/x-gzip":           true,
	"application/pdf":              true,
	"application/octet-stream":     true,
}

// UploadDownload stores a multipart "file" field in object storage and
// returns the fields needed to create a download entry.
func (a *Admin) UploadDownload(w http.ResponseWriter, r *http.Request) {
	if a.uploader == nil {
		writeMessage(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	// Limit request body to maxUploadSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeMessage(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 50 MB")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeMessage(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 50 MB")
		return
	}
	if header.Size == 0 {
		writeMessage(w, http.StatusBadRequest, "file is empty")
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeError(w, r, "read upload", err)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])
	if !allowedDownloadTypes[contentType] {
		writeMessage(w, http.StatusUnsupportedMediaType, "unsupported file type "+contentType)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, r, "read upload", err)
		return
	}

	key := storage.ObjectKey(time.Now().UTC(), header.Filename)
	if err := a.uploader.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		writeError(w, r, "upload download", err)
		return
	}

	slog.Info("download uploaded",
		"key", key,
		"size", header.Size,
		"content_type", contentType,
		"request_id", middleware.RequestIDFromCtx(r.Context()),
	)

	writeJSON(w, http.StatusCreated, models.UploadedFile{
		FileURL:  a.uploader.FileURL(key),
		FileName: path.Base(key),
		FileSize: storage.HumanSize(header.Size),
	})
}

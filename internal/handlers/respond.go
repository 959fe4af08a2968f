// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON REST API. Handler groups hold the
// stores they need and translate store results into HTTP responses.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pristoncodex/internal/middleware"
	"pristoncodex/internal/models"
	"pristoncodex/internal/store"
)

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeMessage sends the {"message": ...} body used for every error.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeRaw sends an already encoded JSON body, as stored in the cache.
func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

// writeError maps an error from decoding, validation or a store call onto
// a status code. Unclassified errors are logged and hidden behind a
// generic 500.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		ve *models.ValidationError
		re *requestError
		ce *store.ConstraintError
	)
	switch {
	case errors.As(err, &ve):
		writeMessage(w, http.StatusBadRequest, ve.Message)
	case errors.As(err, &re):
		writeMessage(w, re.status, re.msg)
	case errors.As(err, &ce):
		writeMessage(w, http.StatusBadRequest, constraintMessage(ce))
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	default:
		slog.Error(op+" failed",
			"error", err,
			"request_id", middleware.RequestIDFromCtx(r.Context()),
		)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func constraintMessage(ce *store.ConstraintError) string {
	switch {
	case errors.Is(ce, store.ErrConflict):
		if field := ce.Field(); field != "" {
			return field + " already in use"
		}
		return "value already in use"
	case errors.Is(ce, store.ErrInvalidReference):
		return "invalid reference"
	default:
		return "invalid value"
	}
}

// NotFound answers unknown routes with the API's JSON error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "route not found")
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoadUserID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		wantID int64
		wantOK bool
	}{
		{"absent", "", 0, false},
		{"valid", "42", 42, true},
		{"padded", " 7 ", 7, true},
		{"above 32 bits", "2147483648", 2147483648, true},
		{"zero", "0", 0, false},
		{"negative", "-3", 0, false},
		{"not a number", "abc", 0, false},
		{"overflow", "99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var gotOK bool
			handler := LoadUserID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotOK = UserIDFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if gotID != tt.wantID || gotOK != tt.wantOK {
				t.Errorf("got (%d, %v), want (%d, %v)", gotID, gotOK, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestUserIDFromCtxEmpty(t *testing.T) {
	if _, ok := UserIDFromCtx(context.Background()); ok {
		t.Error("expected no user ID in an empty context")
	}
}

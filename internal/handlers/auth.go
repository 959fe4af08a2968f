package handlers

import (
	"log/slog"
	"net/http"

	"pristoncodex/internal/middleware"
	"pristoncodex/internal/models"
	"pristoncodex/internal/store"
)

// Auth groups the account endpoints: registration, login and the current
// user lookup.
type Auth struct {
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(userStore *store.UserStore) *Auth {
	return &Auth{userStore: userStore}
}

// Register creates a user account with the default permission level.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := decodeJSON(w, r, &reg); err != nil {
		writeError(w, r, "register", err)
		return
	}
	reg.Normalize()
	if err := reg.Validate(); err != nil {
		writeError(w, r, "register", err)
		return
	}

	ctx := r.Context()
	existing, err := a.userStore.FindByEmail(ctx, reg.Email)
	if err != nil {
		writeError(w, r, "register", err)
		return
	}
	if existing != nil {
		writeMessage(w, http.StatusBadRequest, "email already in use")
		return
	}
	existing, err = a.userStore.FindByUsername(ctx, reg.Username)
	if err != nil {
		writeError(w, r, "register", err)
		return
	}
	if existing != nil {
		writeMessage(w, http.StatusBadRequest, "username already in use")
		return
	}

	// A concurrent registration can still win the race; the unique
	// constraints turn that into the same 400 via writeError.
	user, err := a.userStore.Create(ctx, reg.Insert())
	if err != nil {
		writeError(w, r, "register", err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusCreated, user)
}

// Login checks email and password and returns the user.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, "login", err)
		return
	}
	if err := creds.Validate(); err != nil {
		writeError(w, r, "login", err)
		return
	}

	user, err := a.userStore.Authenticate(r.Context(), creds.Email, creds.Password)
	if err != nil {
		writeError(w, r, "login", err)
		return
	}
	if user == nil {
		slog.Warn("failed login attempt",
			"email", models.NormalizeEmail(creds.Email),
			"request_id", middleware.RequestIDFromCtx(r.Context()),
		)
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Me returns the user named by the user-id header.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := a.userStore.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, "current user", err)
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

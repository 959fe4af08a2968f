// Package router sets up all HTTP routes and middleware chains for the
// Priston Codex API. Reads are public; account routes are rate limited
// per client IP.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"pristoncodex/internal/handlers"
	"pristoncodex/internal/middleware"
)

// Options carries the request-layer settings taken from config.
type Options struct {
	// AllowedOrigins are the front-end origins allowed by CORS.
	AllowedOrigins []string

	// AuthLimiter throttles register and login. Nil disables throttling.
	AuthLimiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, admin *handlers.Admin, auth *handlers.Auth, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request. RequestID runs first so
	// the logger and recoverer can report it.
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.UserIDHeader, middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.LoadUserID)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Health check, no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", public.Categories)
			r.Post("/", admin.CreateCategory)
			r.Get("/{slug}", public.Category)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", public.Posts)
			r.Post("/", admin.CreatePost)
			r.Get("/featured", public.FeaturedPosts)
			r.Get("/search", public.SearchPosts)
			r.Get("/{slug}", public.Post)
			r.Patch("/{id}", admin.UpdatePost)
			r.Post("/{id}/like", public.LikePost)
			r.Get("/{postId}/comments", public.Comments)
			r.Post("/{postId}/comments", public.CreateComment)
		})

		r.Route("/downloads", func(r chi.Router) {
			r.Get("/", public.Downloads)
			r.Post("/", admin.CreateDownload)
			r.Get("/popular", public.PopularDownloads)
			r.Post("/upload", admin.UploadDownload)
			r.Post("/{id}/increment", public.IncrementDownload)
		})

		r.Route("/menus", func(r chi.Router) {
			r.Get("/", public.Menus)
			r.Post("/", admin.CreateMenu)
			r.Get("/tree", public.MenuTree)
		})

		r.Get("/statistics", public.Statistics)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if opts.AuthLimiter != nil {
					r.Use(opts.AuthLimiter.Middleware)
				}
				r.Post("/register", auth.Register)
				r.Post("/login", auth.Login)
			})
			r.Get("/me", auth.Me)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

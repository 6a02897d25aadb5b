package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, logger *zap.Logger) http.Handler {
	items := &ItemsHandler{DB: db, Log: logger}
	imports := &ImportHandler{DB: db, Log: logger}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Heartbeat("/api/health"),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
		RequestLogger(logger),
		middleware.Compress(6, "text/html", "application/json"),
	)

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", items.List)
		r.Post("/", items.Create)
		r.Post("/import", imports.Import)
		r.Get("/{id}", items.Get)
		r.Put("/{id}", items.Update)
		r.Patch("/{id}", items.Patch)
		r.Delete("/{id}", items.Delete)
	})

	return r
}

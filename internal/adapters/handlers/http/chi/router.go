package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"filevault/internal/adapters/handlers/http/chi/v1/file"
	"filevault/internal/adapters/handlers/http/chi/v1/session"
	"filevault/internal/config"
	"filevault/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, sessionStore port.SessionStore, sessionHandler *session.HandlerV1, fileHandler *file.HandlerV1, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))
	r.Use(middleware.RequestSize(int64(cfg.Upload.MaxBatchFiles)*cfg.Upload.MaxFileSize + (10 << 20)))

	if cfg.Env.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(SessionMiddleware(sessionStore, cfg.Session, cfg.Env.Env == "prod", logger))

		r.Get("/session", sessionHandler.GetSessionV1)

		r.Group(func(r chi.Router) {
			if cfg.RateLimit.Requests > 0 {
				r.Use(httprate.Limit(
					cfg.RateLimit.Requests,
					cfg.RateLimit.Window,
					httprate.WithKeyFuncs(httprate.KeyByRealIP),
				))
			}
			r.Mount("/", fileHandler.Routes())
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

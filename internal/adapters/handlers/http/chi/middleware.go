package chi

import (
	"log/slog"
	"net/http"
	"time"

	"filevault/internal/adapters/sessionstore"
	"filevault/internal/config"
	"filevault/internal/core/port"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware is a custom logging middleware
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if r.URL.Path != "/health" {

					l.Info("http_request",
						"request_id", middleware.GetReqID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"status", ww.Status(),
						"duration", time.Since(start),
					)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// SessionMiddleware resolves the caller's session from the session cookie,
// transparently issuing a fresh one when the cookie is absent or expired.
// The resolved identifier is the only session the request may operate on.
func SessionMiddleware(store port.SessionStore, cfg config.SessionConfig, secure bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var sessionID string
			if cookie, err := r.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				valid, validateErr := store.Validate(ctx, cookie.Value)
				if validateErr != nil {
					logger.Error("failed to validate session", "error", validateErr)
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				if valid {
					sessionID = cookie.Value
					if touchErr := store.Touch(ctx, sessionID); touchErr != nil {
						logger.Warn("failed to touch session", "error", touchErr)
					}
				}
			}

			if sessionID == "" {
				created, err := store.Create(ctx)
				if err != nil {
					logger.Error("failed to create session", "error", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				sessionID = created
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(sessionstore.WithSession(ctx, sessionID)))
		})
	}
}

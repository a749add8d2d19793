package session

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"filevault/internal/adapters/sessionstore"
)

// HandlerV1 is the handler for v1 session routes
type HandlerV1 struct {
	logger *slog.Logger
}

// NewSessionHandlerV1 creates HandlerV1
func NewSessionHandlerV1(logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{logger: logger}
}

// V1SessionResponse reports the caller's session identifier
type V1SessionResponse struct {
	SessionID string `json:"sessionId"`
}

// GetSessionV1 returns the caller's session identifier. The session
// middleware has already issued one if the caller had none.
func (h *HandlerV1) GetSessionV1(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionstore.FromContext(r.Context())
	if !ok {
		h.logger.Error("session missing from request context")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(V1SessionResponse{SessionID: sessionID}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

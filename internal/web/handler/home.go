package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/tictactoe-client/internal/web/middleware"
	"github.com/mcoot/tictactoe-client/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	sessions *Sessions
	logger   *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(sessions *Sessions, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{sessions: sessions, logger: logger}
}

// Home renders the root view state
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Start(r)
	defer session.Stop()

	data, err := session.Home(r.Context())
	if err != nil {
		h.logger.Error("failed to load view", slog.String("error", err.Error()))
		renderError(w)
		return
	}
	data.Flash = middleware.GetFlash(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		renderError(w)
	}
}

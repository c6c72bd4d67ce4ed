package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/viewstate"
	"github.com/mcoot/tictactoe-client/internal/web/middleware"
	"github.com/mcoot/tictactoe-client/internal/web/templates/pages"
)

// GameHandler loads games into the root view state
type GameHandler struct {
	sessions *Sessions
	logger   *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(sessions *Sessions, logger *slog.Logger) *GameHandler {
	return &GameHandler{sessions: sessions, logger: logger}
}

// Get runs get_game for the posted key, or the current game when the key is
// blank, and renders the home page with the result
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	key := model.GameKey(strings.TrimSpace(r.FormValue("game_key")))

	session := h.sessions.Start(r)
	defer session.Stop()

	// Settle the first digest so the stored key is known
	if err := session.Loop.Do(r.Context(), func() {}); err != nil {
		h.fail(w, err)
		return
	}

	var pending *viewstate.Pending
	err := session.Loop.Do(r.Context(), func() {
		if key == "" {
			key = session.Root.CurrentGameKey()
		}
		if key == "" {
			return
		}
		pending = session.Root.GetGame(r.Context(), key)
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	if pending == nil {
		middleware.SetFlash(w, model.Warned("No current game: enter a game key or create a new game"))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := pending.Wait(r.Context()); err != nil {
		h.fail(w, err)
		return
	}

	data, err := session.Home(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		renderError(w)
	}
}

func (h *GameHandler) fail(w http.ResponseWriter, err error) {
	h.logger.Error("failed to get game", slog.String("error", err.Error()))
	renderError(w)
}

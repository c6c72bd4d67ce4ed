package viewstate

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/prefs"
)

const newGameFailurePrefix = "Failed to create new game : "

// NewGame backs the new-game dialog
type NewGame struct {
	NewGame model.NewGameForm
	Status  model.Status

	inflight int
	dialog   *Dialog
	service  gameapi.Service
	store    prefs.Store
	logger   *slog.Logger
}

// State returns StateSubmitting while any new_game call is outstanding
func (h *NewGame) State() SubmitState {
	if h.inflight > 0 {
		return StateSubmitting
	}
	return StateIdle
}

// Submit sends the current form to new_game. An invalid form is ignored.
// On success the new game's key becomes the stored current game.
func (h *NewGame) Submit(ctx context.Context, form model.FormState) *Pending {
	if !form.Valid() {
		return skipped()
	}

	payload := h.NewGame
	h.inflight++

	return call(ctx, h.dialog.scope.loop,
		func(ctx context.Context) (*gameapi.NewGameResult, error) {
			return h.service.NewGame(ctx, payload)
		},
		func(result *gameapi.NewGameResult, err error) {
			h.inflight--
			if err != nil {
				h.Status = model.Warned(newGameFailurePrefix + gameapi.ErrorMessage(err))
				h.logger.Error(h.Status.Messages)
				return
			}

			h.Status = model.Succeeded("New game has been created! Players : " + result.UserName1 + " " + result.UserName2)
			h.persistKey(ctx, result.URLSafeKey)
			h.NewGame = model.NewGameForm{}
			h.logger.Info(h.Status.Messages, slog.Any("result", result))
		},
	)
}

// persistKey outlives the submitting request: the callback runs even if the
// caller has gone away
func (h *NewGame) persistKey(ctx context.Context, key model.GameKey) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := h.store.Set(ctx, model.GameKeyPreference, string(key)); err != nil {
		h.logger.Error("failed to store current game",
			slog.String("game_key", string(key)),
			slog.String("error", err.Error()),
		)
	}
}

// Close closes the dialog, discarding any unsent edits
func (h *NewGame) Close() {
	h.dialog.Close()
}

package viewstate

import (
	"context"
	"log/slog"

	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/model"
)

// SubmitState reports whether a handler has a request in flight
type SubmitState string

const (
	StateIdle       SubmitState = "idle"
	StateSubmitting SubmitState = "submitting"
)

// createUserFailurePrefix precedes the service message on a failed create_user
const createUserFailurePrefix = "Failed to create a user : "

// CreateUser backs the create-user dialog
type CreateUser struct {
	User   model.UserForm
	Status model.Status

	inflight int
	dialog   *Dialog
	service  gameapi.Service
	logger   *slog.Logger
}

// State returns StateSubmitting while any create_user call is outstanding
func (h *CreateUser) State() SubmitState {
	if h.inflight > 0 {
		return StateSubmitting
	}
	return StateIdle
}

// Submit sends the current form to create_user. An invalid form is ignored.
func (h *CreateUser) Submit(ctx context.Context, form model.FormState) *Pending {
	if !form.Valid() {
		return skipped()
	}

	payload := h.User
	h.inflight++

	return call(ctx, h.dialog.scope.loop,
		func(ctx context.Context) (*gameapi.StringMessage, error) {
			return h.service.CreateUser(ctx, payload)
		},
		func(result *gameapi.StringMessage, err error) {
			h.inflight--
			if err != nil {
				h.Status = model.Warned(createUserFailurePrefix + gameapi.ErrorMessage(err))
				h.logger.Error(h.Status.Messages)
				return
			}
			h.Status = model.Succeeded(result.Message)
			h.User = model.UserForm{}
			h.logger.Info(h.Status.Messages, slog.Any("result", result))
		},
	)
}

// Close closes the dialog, discarding any unsent edits
func (h *CreateUser) Close() {
	h.dialog.Close()
}

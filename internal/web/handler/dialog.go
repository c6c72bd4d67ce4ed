package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/viewstate"
	"github.com/mcoot/tictactoe-client/internal/web/middleware"
	"github.com/mcoot/tictactoe-client/internal/web/templates/layout"
	"github.com/mcoot/tictactoe-client/internal/web/templates/pages"
)

// DialogHandler serves the create-user and new-game dialogs
type DialogHandler struct {
	sessions *Sessions
	logger   *slog.Logger
}

// NewDialogHandler creates a new DialogHandler
func NewDialogHandler(sessions *Sessions, logger *slog.Logger) *DialogHandler {
	return &DialogHandler{sessions: sessions, logger: logger}
}

// View renders an empty dialog
func (h *DialogHandler) View(w http.ResponseWriter, r *http.Request) {
	kind, err := viewstate.ParseDialogKind(mux.Vars(r)["kind"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	render(w, r, http.StatusOK, dialogPage(kind, layout.PageData{Flash: middleware.GetFlash(r.Context())}, model.UserForm{}, model.NewGameForm{}))
}

// Submit opens the dialog in a fresh session and submits the posted form.
// Success closes the dialog and returns home; a failure keeps it open with
// the warning shown. An invalid form is re-rendered without contacting the
// service.
func (h *DialogHandler) Submit(w http.ResponseWriter, r *http.Request) {
	kind, err := viewstate.ParseDialogKind(mux.Vars(r)["kind"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user := model.UserForm{
		UserName: strings.TrimSpace(r.FormValue("user_name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
	}
	newGame := model.NewGameForm{
		UserName1: strings.TrimSpace(r.FormValue("user_name1")),
		UserName2: strings.TrimSpace(r.FormValue("user_name2")),
	}

	session := h.sessions.Start(r)
	defer session.Stop()

	var (
		d       *viewstate.Dialog
		pending *viewstate.Pending
		openErr error
	)
	err = session.Loop.Do(r.Context(), func() {
		d, openErr = session.Presenter.Open(kind, session.Root.Scope())
		if openErr != nil {
			return
		}
		switch kind {
		case viewstate.DialogCreateUser:
			handler := d.CreateUser()
			handler.User = user
			pending = handler.Submit(r.Context(), user.Validate())
		case viewstate.DialogNewGame:
			handler := d.NewGame()
			handler.NewGame = newGame
			pending = handler.Submit(r.Context(), newGame.Validate())
		}
	})
	if err := errors.Join(err, openErr); err != nil {
		h.fail(w, err)
		return
	}

	if !pending.Issued() {
		_ = session.Loop.Do(r.Context(), d.Dismiss)
		render(w, r, http.StatusUnprocessableEntity, dialogPage(kind, layout.PageData{}, user, newGame))
		return
	}
	if err := pending.Wait(r.Context()); err != nil {
		h.fail(w, err)
		return
	}

	var status model.Status
	err = session.Loop.Do(r.Context(), func() {
		status = d.Status()
		if status.AlertStatus != model.AlertWarning {
			d.Close()
		}
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	if status.AlertStatus == model.AlertWarning {
		render(w, r, http.StatusOK, dialogPage(kind, layout.PageData{Flash: flashFor(status)}, user, newGame))
		return
	}

	middleware.SetFlash(w, status)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Close discards the dialog and returns home
func (h *DialogHandler) Close(w http.ResponseWriter, r *http.Request) {
	if _, err := viewstate.ParseDialogKind(mux.Vars(r)["kind"]); err != nil {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *DialogHandler) fail(w http.ResponseWriter, err error) {
	h.logger.Error("dialog failed", slog.String("error", err.Error()))
	renderError(w)
}

func dialogPage(kind viewstate.DialogKind, page layout.PageData, user model.UserForm, newGame model.NewGameForm) templ.Component {
	switch kind {
	case viewstate.DialogNewGame:
		page.Title = "New game"
		return pages.NewGameDialog(pages.NewGameData{PageData: page, NewGame: newGame})
	default:
		page.Title = "Create user"
		return pages.CreateUserDialog(pages.CreateUserData{PageData: page, User: user})
	}
}

func render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		slog.Default().Error("render failed", slog.String("error", err.Error()))
	}
}

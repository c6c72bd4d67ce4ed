package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mcoot/tictactoe-client/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-client/internal/factory"
	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/web/middleware"
	"github.com/mcoot/tictactoe-client/internal/web/templates/layout"
	"github.com/mcoot/tictactoe-client/internal/web/templates/pages"
)

// Sessions starts the view state for a page load. Each request gets its own
// update loop over the browser's cookie preference store.
type Sessions struct {
	service gameapi.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// NewSessions creates a new Sessions
func NewSessions(service gameapi.Service, clk clock.Clock, logger *slog.Logger) *Sessions {
	return &Sessions{
		service: service,
		clock:   clk,
		logger:  logger,
	}
}

// Session is the view state of one page load
type Session struct {
	*factory.App
	stop context.CancelFunc
}

// Start wires and starts a session for r. Requires the Prefs middleware.
func (s *Sessions) Start(r *http.Request) *Session {
	app := factory.NewWithDependencies(s.service, middleware.GetPrefs(r.Context()), s.clock, s.logger)
	ctx, stop := context.WithCancel(r.Context())
	app.Start(ctx)
	return &Session{App: app, stop: stop}
}

// Stop ends the session's update loop
func (s *Session) Stop() {
	s.stop()
}

// Home snapshots the root view state for the home page
func (s *Session) Home(ctx context.Context) (pages.HomeData, error) {
	var data pages.HomeData
	// The first digest is what reads the stored game key
	if err := s.Loop.Do(ctx, func() {}); err != nil {
		return data, err
	}
	err := s.Loop.Do(ctx, func() {
		root := s.Root
		data = pages.HomeData{
			PageData:       layout.PageData{Title: "Home", Flash: flashFor(root.Status)},
			CurrentGameKey: root.CurrentGameKey(),
			Table:          root.Table,
			CurrentPlayer:  root.CurrentPlayer,
			Board:          root.Board,
		}
	})
	return data, err
}

func flashFor(status model.Status) *layout.FlashMessage {
	if status.IsZero() {
		return nil
	}
	return &layout.FlashMessage{Type: string(status.AlertStatus), Message: status.Messages}
}

func renderError(w http.ResponseWriter) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

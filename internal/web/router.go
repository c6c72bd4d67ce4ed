package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/tictactoe-client/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/web/handler"
	"github.com/mcoot/tictactoe-client/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger  *slog.Logger
	Service gameapi.Service
	Clock   clock.Clock
	// CookieMaxAge is how long the browser keeps its preferences
	CookieMaxAge time.Duration
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	prefsMiddleware := middleware.Prefs(cfg.CookieMaxAge)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(flashMiddleware)
	r.Use(prefsMiddleware)

	// Create handlers
	sessions := handler.NewSessions(cfg.Service, clk, cfg.Logger)
	homeHandler := handler.NewHomeHandler(sessions, cfg.Logger)
	dialogHandler := handler.NewDialogHandler(sessions, cfg.Logger)
	gameHandler := handler.NewGameHandler(sessions, cfg.Logger)

	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	// Dialog routes
	r.HandleFunc("/dialogs/{kind}", dialogHandler.View).Methods(http.MethodGet)
	r.HandleFunc("/dialogs/{kind}", dialogHandler.Submit).Methods(http.MethodPost)
	r.HandleFunc("/dialogs/{kind}/close", dialogHandler.Close).Methods(http.MethodPost)

	// Game routes
	r.HandleFunc("/games/get", gameHandler.Get).Methods(http.MethodPost)

	return r
}

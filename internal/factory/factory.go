package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/tictactoe-client/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/prefs"
	"github.com/mcoot/tictactoe-client/internal/prefs/file"
	"github.com/mcoot/tictactoe-client/internal/prefs/memory"
	redisprefs "github.com/mcoot/tictactoe-client/internal/prefs/redis"
	"github.com/mcoot/tictactoe-client/internal/viewstate"
)

// Preference store type constants
const (
	StoreTypeMemory = "memory"
	StoreTypeFile   = "file"
	StoreTypeRedis  = "redis"
)

// App contains all wired client components
type App struct {
	Service gameapi.Service
	Store   prefs.Store
	Clock   clock.Clock
	Logger  *slog.Logger

	// View state, owned by Loop
	Loop      *viewstate.Loop
	Presenter *viewstate.Presenter
	Root      *viewstate.Root

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// ServerURL is the tic_tac_toe API base URL
	// If empty, defaults to gameapi.DefaultBaseURL
	ServerURL string
	// HTTPClient overrides the client used for API calls (optional)
	HTTPClient *http.Client
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StoreType selects the preference backend ("memory", "file" or "redis")
	// If empty, defaults to "memory"
	StoreType string
	// PrefsFile is the preference file (required if StoreType is "file")
	PrefsFile string
	// RedisConfig holds Redis connection settings (required if StoreType is "redis")
	RedisConfig *redisprefs.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	serverURL := cfg.ServerURL
	if serverURL == "" {
		serverURL = gameapi.DefaultBaseURL
	}
	opts := []gameapi.Option{gameapi.WithLogger(logger)}
	if cfg.HTTPClient != nil {
		opts = append(opts, gameapi.WithHTTPClient(cfg.HTTPClient))
	}
	service := gameapi.NewClient(serverURL, opts...)

	var (
		store   prefs.Store
		closers []io.Closer
	)
	storeType := cfg.StoreType
	if storeType == "" {
		storeType = StoreTypeMemory
	}

	switch storeType {
	case StoreTypeMemory:
		store = memory.New()
	case StoreTypeFile:
		if cfg.PrefsFile == "" {
			return nil, errors.New("PrefsFile required when StoreType is file")
		}
		store = file.New(cfg.PrefsFile)
	case StoreTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StoreType is redis")
		}
		redisStore, err := redisprefs.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect preference store: %w", err)
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, fmt.Errorf("invalid StoreType %q: must be 'memory', 'file' or 'redis'", storeType)
	}

	app := NewWithDependencies(service, store, clock.New(), logger)
	app.closers = closers
	return app, nil
}

// NewWithDependencies wires an App around the given collaborators.
// The root view state is bound before the loop starts, so no task is needed.
func NewWithDependencies(service gameapi.Service, store prefs.Store, clk clock.Clock, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	loop := viewstate.NewLoop(logger)
	presenter := viewstate.NewPresenter(loop, service, store, clk, logger)
	root := viewstate.NewRoot(loop.Root(), service, store, logger)

	return &App{
		Service:   service,
		Store:     store,
		Clock:     clk,
		Logger:    logger,
		Loop:      loop,
		Presenter: presenter,
		Root:      root,
	}
}

// Start runs the update loop in the background until ctx is cancelled
func (a *App) Start(ctx context.Context) {
	go func() {
		if err := a.Loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.Logger.Error("update loop stopped", slog.String("error", err.Error()))
		}
	}()
}

// Close releases any connections held by the preference store
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

package viewstate

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/prefs"
)

const getGameFailurePrefix = "Failed to get game : "

// storeReadTimeout bounds the preference read done on every digest
const storeReadTimeout = 2 * time.Second

// Root is the application-wide view state: the loaded game and the key of
// the most recently created game
type Root struct {
	Table         model.Table
	CurrentPlayer model.Marker
	// Board is never refreshed from get_game; the service response carries no cells
	Board  model.Board
	Status model.Status

	currentGameKey model.GameKey
	inflight       int

	scope   *Scope
	service gameapi.Service
	store   prefs.Store
	logger  *slog.Logger
}

// NewRoot binds the root view state to scope and starts watching the stored
// game key. Must be called on the loop.
func NewRoot(scope *Scope, service gameapi.Service, store prefs.Store, logger *slog.Logger) *Root {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := &Root{
		CurrentPlayer: model.FirstTurn,
		scope:         scope,
		service:       service,
		store:         store,
		logger:        logger,
	}

	Watch(scope, r.storedGameKey, func(value, _ model.GameKey) {
		r.currentGameKey = value
	})

	return r
}

// Scope returns the scope the root state is bound to
func (r *Root) Scope() *Scope {
	return r.scope
}

// CurrentGameKey returns the stored game key as of the last digest
func (r *Root) CurrentGameKey() model.GameKey {
	return r.currentGameKey
}

// State returns StateSubmitting while any get_game call is outstanding
func (r *Root) State() SubmitState {
	if r.inflight > 0 {
		return StateSubmitting
	}
	return StateIdle
}

// storedGameKey reads the preference; on a read error the last known key is kept
func (r *Root) storedGameKey() model.GameKey {
	ctx, cancel := context.WithTimeout(context.Background(), storeReadTimeout)
	defer cancel()

	value, err := prefs.Lookup(ctx, r.store, model.GameKeyPreference)
	if err != nil {
		r.logger.Warn("failed to read current game", slog.String("error", err.Error()))
		return r.currentGameKey
	}
	return model.GameKey(value)
}

// GetGame loads key into the table
func (r *Root) GetGame(ctx context.Context, key model.GameKey) *Pending {
	r.inflight++

	return call(ctx, r.scope.loop,
		func(ctx context.Context) (*gameapi.GameForm, error) {
			return r.service.GetGame(ctx, gameapi.GetGameRequest{URLSafeGameKey: key})
		},
		func(result *gameapi.GameForm, err error) {
			r.inflight--
			if err != nil {
				r.Status = model.Warned(getGameFailurePrefix + gameapi.ErrorMessage(err))
				r.logger.Error(r.Status.Messages)
				return
			}
			r.Status = model.Succeeded("Get game succeded : " + result.Message)
			r.Table = model.Table{
				URLSafeGameKey: result.URLSafeKey,
				CurrentPlayer:  result.CurrentPlayer,
			}
			r.logger.Info(r.Status.Messages, slog.Any("result", result))
		},
	)
}

// GetCurrentGame loads the stored game into the table
func (r *Root) GetCurrentGame(ctx context.Context) *Pending {
	return r.GetGame(ctx, r.currentGameKey)
}

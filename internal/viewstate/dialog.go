package viewstate

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/tictactoe-client/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/prefs"
)

// DialogKind names a dialog the presenter can open
type DialogKind string

const (
	DialogCreateUser DialogKind = "create-user"
	DialogNewGame    DialogKind = "new-game"
)

// ParseDialogKind validates a dialog name coming from a front end
func ParseDialogKind(name string) (DialogKind, error) {
	switch kind := DialogKind(name); kind {
	case DialogCreateUser, DialogNewGame:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", model.ErrUnknownDialog, name)
	}
}

// Dialog is an open modal bound to a fresh form handler.
// Close resolves it, Dismiss rejects it; either destroys its scope.
type Dialog struct {
	kind       DialogKind
	scope      *Scope
	createUser *CreateUser
	newGame    *NewGame

	settled  bool
	err      error
	done     chan struct{}
	onSettle func(*Dialog)
}

// Kind returns which dialog this is
func (d *Dialog) Kind() DialogKind {
	return d.kind
}

// Scope returns the dialog's own scope, a child of the opener's
func (d *Dialog) Scope() *Scope {
	return d.scope
}

// CreateUser returns the handler of a create-user dialog, nil otherwise
func (d *Dialog) CreateUser() *CreateUser {
	return d.createUser
}

// NewGame returns the handler of a new-game dialog, nil otherwise
func (d *Dialog) NewGame() *NewGame {
	return d.newGame
}

// Status returns the status of whichever handler the dialog is bound to
func (d *Dialog) Status() model.Status {
	switch {
	case d.createUser != nil:
		return d.createUser.Status
	case d.newGame != nil:
		return d.newGame.Status
	default:
		return model.Status{}
	}
}

// IsOpen returns false once the dialog has been closed or dismissed
func (d *Dialog) IsOpen() bool {
	return !d.settled
}

// Close resolves the dialog
func (d *Dialog) Close() {
	d.settle(nil)
}

// Dismiss rejects the dialog with model.ErrDialogDismissed
func (d *Dialog) Dismiss() {
	d.settle(model.ErrDialogDismissed)
}

// Done is closed once the dialog is closed or dismissed
func (d *Dialog) Done() <-chan struct{} {
	return d.done
}

// Wait blocks until the dialog settles and returns nil if it was closed
func (d *Dialog) Wait(ctx context.Context) error {
	select {
	case <-d.done:
		return d.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dialog) settle(err error) {
	if d.settled {
		return
	}
	d.settled = true
	d.err = err
	d.scope.Destroy()
	close(d.done)
	if d.onSettle != nil {
		d.onSettle(d)
	}
}

// Presenter opens dialogs
type Presenter struct {
	loop    *Loop
	service gameapi.Service
	store   prefs.Store
	clock   clock.Clock
	logger  *slog.Logger
}

// NewPresenter creates a new dialog presenter
func NewPresenter(loop *Loop, service gameapi.Service, store prefs.Store, clk clock.Clock, logger *slog.Logger) *Presenter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Presenter{
		loop:    loop,
		service: service,
		store:   store,
		clock:   clk,
		logger:  logger,
	}
}

// Open shows a dialog of the given kind. Its scope is always a child of
// parent (the loop's root scope when parent is nil), so the opener's watches
// run in the same digest as the dialog's callbacks. Must be called on the loop.
func (p *Presenter) Open(kind DialogKind, parent *Scope) (*Dialog, error) {
	if parent == nil {
		parent = p.loop.Root()
	}
	if parent.Destroyed() {
		return nil, model.ErrScopeDestroyed
	}

	d := &Dialog{
		kind:     kind,
		done:     make(chan struct{}),
		onSettle: p.observe,
	}

	switch kind {
	case DialogCreateUser:
		d.createUser = &CreateUser{
			dialog:  d,
			service: p.service,
			logger:  p.logger,
		}
	case DialogNewGame:
		d.newGame = &NewGame{
			dialog:  d,
			service: p.service,
			store:   p.store,
			logger:  p.logger,
		}
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownDialog, kind)
	}

	d.scope = parent.New()
	p.logger.Debug("dialog opened", slog.String("dialog", string(kind)))
	return d, nil
}

func (p *Presenter) observe(d *Dialog) {
	if d.err != nil {
		p.logger.Info("dialog dismissed",
			slog.String("dialog", string(d.kind)),
			slog.Time("at", p.clock.Now()),
		)
		return
	}
	p.logger.Info("dialog saved", slog.String("dialog", string(d.kind)))
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/viewstate"
)

// submitDialog opens a dialog, lets fill populate and submit its form, waits
// for the result and closes the dialog. A warning status becomes an error.
func submitDialog(ctx context.Context, kind viewstate.DialogKind, fill func(d *viewstate.Dialog) *viewstate.Pending) (model.Status, error) {
	var (
		d       *viewstate.Dialog
		pending *viewstate.Pending
		openErr error
	)
	err := app.Loop.Do(ctx, func() {
		d, openErr = app.Presenter.Open(kind, app.Root.Scope())
		if openErr != nil {
			return
		}
		pending = fill(d)
	})
	if err := errors.Join(err, openErr); err != nil {
		return model.Status{}, err
	}

	if !pending.Issued() {
		_ = app.Loop.Do(ctx, d.Dismiss)
		return model.Status{}, fmt.Errorf("%w: check the required flags", model.ErrInvalidForm)
	}
	if err := pending.Wait(ctx); err != nil {
		return model.Status{}, err
	}

	var status model.Status
	if err := app.Loop.Do(ctx, func() {
		status = d.Status()
		d.Close()
	}); err != nil {
		return model.Status{}, err
	}
	return status, statusErr(status)
}

// rootView snapshots the root view state as of a settled digest
func rootView(ctx context.Context) (GameView, error) {
	var view GameView
	// The first task's digest is what initialises the watched game key
	if err := app.Loop.Do(ctx, func() {}); err != nil {
		return view, err
	}
	err := app.Loop.Do(ctx, func() {
		r := app.Root
		view = GameView{
			CurrentGameKey: r.CurrentGameKey(),
			Table:          r.Table,
			CurrentPlayer:  r.CurrentPlayer,
			Board:          r.Board,
			Status:         r.Status,
		}
	})
	return view, err
}

func statusErr(status model.Status) error {
	if status.AlertStatus == model.AlertWarning {
		return errors.New(status.Messages)
	}
	return nil
}

package model

import "errors"

// Common errors used across the application
var (
	// Preference errors
	ErrPreferenceNotFound = errors.New("preference not found")

	// Dialog errors
	ErrUnknownDialog   = errors.New("unknown dialog")
	ErrDialogDismissed = errors.New("dialog dismissed")

	// View state errors
	ErrScopeDestroyed = errors.New("scope has been destroyed")
	ErrDigestLimit    = errors.New("digest did not settle")
	ErrLoopStopped    = errors.New("update loop is not running")

	// Form errors
	ErrInvalidForm = errors.New("form is invalid")
)

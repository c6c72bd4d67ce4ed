package gameapi

import (
	"errors"
	"fmt"
)

// RemoteError is the only failure the game service reports: the call failed,
// optionally with a human readable message. Network failures, server-side
// validation and business errors all collapse into it.
type RemoteError struct {
	Status  int // 0 when the request never got a response
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote call failed: %s", e.Message)
	}
	return fmt.Sprintf("remote call failed (HTTP %d): %s", e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// ErrorMessage returns the service-supplied message carried by err, or ""
func ErrorMessage(err error) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

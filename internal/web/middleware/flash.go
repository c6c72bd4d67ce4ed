package middleware

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/web/templates/layout"
)

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")
)

// GetFlash retrieves the flash message from the request context
// Returns nil if no flash message is set
func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash carries status over to the page shown after a redirect
func SetFlash(w http.ResponseWriter, status model.Status) {
	if status.IsZero() {
		return
	}
	// Encode as type:message; the message is base64 so any user name survives the cookie
	value := string(status.AlertStatus) + ":" + base64.RawURLEncoding.EncodeToString([]byte(status.Messages))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60, // 1 minute expiry
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears flash messages
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *layout.FlashMessage

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				flash = parseFlash(cookie.Value)

				// Clear the cookie
				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseFlash(value string) *layout.FlashMessage {
	kind, encoded, ok := strings.Cut(value, ":")
	if !ok {
		return nil
	}
	message, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	return &layout.FlashMessage{
		Type:    kind,
		Message: string(message),
	}
}

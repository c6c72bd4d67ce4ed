package middleware

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/prefs"
)

type contextKey string

const (
	prefsContextKey contextKey = "prefs"
)

// CookieStore is the preference store of one browser: every key is a cookie.
// It lives for a single request; values set during the request are visible
// to later reads in the same request.
type CookieStore struct {
	mu      sync.Mutex
	r       *http.Request
	w       http.ResponseWriter
	maxAge  time.Duration
	written map[string]string
}

// NewCookieStore creates a store reading r's cookies and writing to w
func NewCookieStore(w http.ResponseWriter, r *http.Request, maxAge time.Duration) *CookieStore {
	return &CookieStore{
		r:       r,
		w:       w,
		maxAge:  maxAge,
		written: make(map[string]string),
	}
}

// Get returns the cookie value for key
func (s *CookieStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value, ok := s.written[key]; ok {
		return value, nil
	}

	cookie, err := s.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", model.ErrPreferenceNotFound
	}
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// Set writes key as a cookie on the response
func (s *CookieStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.written[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// GetPrefs retrieves the browser's preference store from the request context
// Returns nil if the Prefs middleware is not applied
func GetPrefs(ctx context.Context) prefs.Store {
	store, _ := ctx.Value(prefsContextKey).(prefs.Store)
	return store
}

// Prefs returns middleware that binds a cookie preference store to each request
func Prefs(maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := NewCookieStore(w, r, maxAge)
			ctx := context.WithValue(r.Context(), prefsContextKey, prefs.Store(store))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/web/templates/layout"
)

func TestFlashRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	SetFlash(w, model.Warned("Failed to create a user : A User with that name already exists!"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])

	var flash *layout.FlashMessage
	rr := httptest.NewRecorder()
	Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flash = GetFlash(r.Context())
	})).ServeHTTP(rr, r)

	require.NotNil(t, flash)
	assert.Equal(t, "warning", flash.Type)
	assert.Equal(t, "Failed to create a user : A User with that name already exists!", flash.Message)

	// The flash cookie is cleared once read
	cleared := rr.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestSetFlashSkipsEmptyStatus(t *testing.T) {
	w := httptest.NewRecorder()
	SetFlash(w, model.Status{})
	assert.Empty(t, w.Result().Cookies())
}

func TestParseFlashRejectsGarbage(t *testing.T) {
	assert.Nil(t, parseFlash("no-separator"))
	assert.Nil(t, parseFlash("success:%%%"))
}

package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tictactoe-client/internal/dependencies/mocks"
	"github.com/mcoot/tictactoe-client/internal/testutil"
	"github.com/mcoot/tictactoe-client/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	fake    *testutil.FakeService
	cookies *cookieJar
}

// newWebTestServer creates a new test server backed by a fake game service
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	fake := testutil.NewFakeService(t)

	router := web.NewRouter(web.RouterConfig{
		Logger:       testutil.NopLogger(),
		Service:      fake.Client(),
		Clock:        mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		CookieMaxAge: time.Hour,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		fake:    fake,
		cookies: newCookieJar(),
	}
}

// newBrowser returns a server view sharing the handler and fake service
// but with its own cookies
func (ts *webTestServer) newBrowser() *webTestServer {
	return &webTestServer{
		t:       ts.t,
		handler: ts.handler,
		fake:    ts.fake,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// value returns a cookie's value, or "" if it is not set
func (j *cookieJar) value(name string) string {
	if cookie, ok := j.cookies[name]; ok {
		return cookie.Value
	}
	return ""
}

// Helper functions for common test operations

// createUser creates a user through the create-user dialog
func (ts *webTestServer) createUser(name string) {
	ts.t.Helper()
	form := url.Values{"user_name": {name}}
	rr := ts.post("/dialogs/create-user", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after creating a user")
}

// newGame starts a game through the new-game dialog
func (ts *webTestServer) newGame(player1, player2 string) *httptest.ResponseRecorder {
	ts.t.Helper()
	form := url.Values{"user_name1": {player1}, "user_name2": {player2}}
	rr := ts.post("/dialogs/new-game", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after creating a game")
	return rr
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}

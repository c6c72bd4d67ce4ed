package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/model"
)

// FakeService is an in-memory stand-in for the tic_tac_toe API, served over
// HTTP with the same paths and error shape as the real service
type FakeService struct {
	mu      sync.Mutex
	users   map[string]string // name -> email
	games   map[model.GameKey]*gameapi.GameForm
	calls   map[string]int
	nextKey int
	failing map[string]string // operation -> error message

	Server *httptest.Server
}

// NewFakeService starts a fake game service that is closed with the test
func NewFakeService(t testing.TB) *FakeService {
	t.Helper()

	f := &FakeService{
		users:   make(map[string]string),
		games:   make(map[model.GameKey]*gameapi.GameForm),
		calls:   make(map[string]int),
		failing: make(map[string]string),
	}

	r := mux.NewRouter()
	r.HandleFunc("/user", f.createUser).Methods(http.MethodPost)
	r.HandleFunc("/game", f.newGame).Methods(http.MethodPost)
	r.HandleFunc("/game/{urlsafe_game_key}", f.getGame).Methods(http.MethodGet)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the base URL to hand to gameapi.NewClient
func (f *FakeService) URL() string {
	return f.Server.URL
}

// Client returns a gameapi client pointed at the fake
func (f *FakeService) Client() *gameapi.Client {
	return gameapi.NewClient(f.URL(), gameapi.WithHTTPClient(f.Server.Client()))
}

// Fail makes every call to operation fail with message until Recover is called.
// operation is one of "create_user", "new_game", "get_game".
func (f *FakeService) Fail(operation, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[operation] = message
}

// Recover clears a failure set with Fail
func (f *FakeService) Recover(operation string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failing, operation)
}

// Calls returns how many times operation has been invoked
func (f *FakeService) Calls(operation string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[operation]
}

// AddUser registers a user without going through the API
func (f *FakeService) AddUser(name, email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[name] = email
}

// AddGame registers a game without going through the API
func (f *FakeService) AddGame(game gameapi.GameForm) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.games[game.URLSafeKey] = &game
}

func (f *FakeService) begin(operation string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[operation]++
	msg, failing := f.failing[operation]
	return msg, failing
}

func (f *FakeService) createUser(w http.ResponseWriter, r *http.Request) {
	if msg, failing := f.begin("create_user"); failing {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var req gameapi.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[req.UserName]; exists {
		writeError(w, http.StatusConflict, "A User with that name already exists!")
		return
	}
	f.users[req.UserName] = req.Email

	writeJSON(w, http.StatusOK, gameapi.StringMessage{
		Message: fmt.Sprintf("User %s created!", req.UserName),
	})
}

func (f *FakeService) newGame(w http.ResponseWriter, r *http.Request) {
	if msg, failing := f.begin("new_game"); failing {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var req gameapi.NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, name := range []string{req.UserName1, req.UserName2} {
		if _, exists := f.users[name]; !exists {
			writeError(w, http.StatusNotFound, "A User with that name does not exist!")
			return
		}
	}

	f.nextKey++
	key := model.GameKey(fmt.Sprintf("game-%d", f.nextKey))
	f.games[key] = &gameapi.GameForm{
		URLSafeKey:    key,
		CurrentPlayer: model.PlayerX,
		Message:       "Time to make a move!",
	}

	writeJSON(w, http.StatusOK, gameapi.NewGameResult{
		URLSafeKey: key,
		UserName1:  req.UserName1,
		UserName2:  req.UserName2,
	})
}

func (f *FakeService) getGame(w http.ResponseWriter, r *http.Request) {
	if msg, failing := f.begin("get_game"); failing {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	key := model.GameKey(mux.Vars(r)["urlsafe_game_key"])

	f.mu.Lock()
	defer f.mu.Unlock()
	game, ok := f.games[key]
	if !ok {
		writeError(w, http.StatusNotFound, "Game not found!")
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	var body gameapi.ErrorBody
	body.Error.Code = status
	body.Error.Message = message
	writeJSON(w, status, body)
}

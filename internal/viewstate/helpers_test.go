package viewstate

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/mcoot/tictactoe-client/internal/gameapi"
)

// stubService answers each operation with a test-supplied function
type stubService struct {
	createUser func(context.Context, gameapi.CreateUserRequest) (*gameapi.StringMessage, error)
	newGame    func(context.Context, gameapi.NewGameRequest) (*gameapi.NewGameResult, error)
	getGame    func(context.Context, gameapi.GetGameRequest) (*gameapi.GameForm, error)

	createUserCalls atomic.Int32
	newGameCalls    atomic.Int32
	getGameCalls    atomic.Int32
}

var _ gameapi.Service = (*stubService)(nil)

func (s *stubService) CreateUser(ctx context.Context, req gameapi.CreateUserRequest) (*gameapi.StringMessage, error) {
	s.createUserCalls.Add(1)
	return s.createUser(ctx, req)
}

func (s *stubService) NewGame(ctx context.Context, req gameapi.NewGameRequest) (*gameapi.NewGameResult, error) {
	s.newGameCalls.Add(1)
	return s.newGame(ctx, req)
}

func (s *stubService) GetGame(ctx context.Context, req gameapi.GetGameRequest) (*gameapi.GameForm, error) {
	s.getGameCalls.Add(1)
	return s.getGame(ctx, req)
}

func remoteErr(message string) error {
	return &gameapi.RemoteError{Status: 400, Message: message}
}

// flakyStore can be switched into failing reads
type flakyStore struct {
	mu     sync.Mutex
	value  string
	broken bool
}

func (f *flakyStore) setBroken(broken bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broken = broken
}

func (f *flakyStore) Get(context.Context, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return "", errors.New("store unavailable")
	}
	return f.value, nil
}

func (f *flakyStore) Set(_ context.Context, _, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
	return nil
}

package gameapi

import "context"

// Service is the remote tic_tac_toe API as seen by the view state.
// Every call is a single request/response that may fail with *RemoteError.
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*StringMessage, error)
	NewGame(ctx context.Context, req NewGameRequest) (*NewGameResult, error)
	GetGame(ctx context.Context, req GetGameRequest) (*GameForm, error)
}

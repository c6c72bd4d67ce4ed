package gameapi

import "github.com/mcoot/tictactoe-client/internal/model"

// CreateUserRequest is the create_user payload
type CreateUserRequest = model.UserForm

// NewGameRequest is the new_game payload
type NewGameRequest = model.NewGameForm

// GetGameRequest identifies the game to fetch
type GetGameRequest struct {
	URLSafeGameKey model.GameKey `json:"urlsafe_game_key"`
}

// StringMessage is the create_user result
type StringMessage struct {
	Message string `json:"message"`
}

// NewGameResult is the new_game result
type NewGameResult struct {
	URLSafeKey model.GameKey `json:"urlsafe_key"`
	UserName1  string        `json:"user_name1"`
	UserName2  string        `json:"user_name2"`
}

// GameForm is the get_game result
type GameForm struct {
	URLSafeKey    model.GameKey `json:"urlsafe_key"`
	CurrentPlayer model.Marker  `json:"current_player"`
	Message       string        `json:"message"`
}

// ErrorBody is the body the service returns for any failed call
type ErrorBody struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

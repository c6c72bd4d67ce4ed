package model

// GameKey is the opaque urlsafe key the game service assigns to a game
type GameKey string

// GameKeyPreference is the preference entry holding the most recently created game
const GameKeyPreference = "game_url_key"

// Table is the client's projection of the game currently being viewed.
// It may be stale: the game service owns the canonical record.
type Table struct {
	URLSafeGameKey GameKey `json:"urlsafe_game_key,omitempty"`
	CurrentPlayer  Marker  `json:"current_player,omitempty"`
}

// IsEmpty reports whether no game has been loaded into the table
func (t Table) IsEmpty() bool {
	return t == Table{}
}

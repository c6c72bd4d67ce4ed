package model

// Marker identifies which side a turn belongs to
type Marker string

const (
	PlayerX Marker = "PLAYER_X" // Always moves first
	PlayerO Marker = "PLAYER_O"
)

// FirstTurn is the marker shown before any game has been loaded
const FirstTurn = PlayerX

// Valid returns true if m is one of the two turn markers
func (m Marker) Valid() bool {
	return m == PlayerX || m == PlayerO
}

// Symbol returns the single character used to draw the marker on a board
func (m Marker) Symbol() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

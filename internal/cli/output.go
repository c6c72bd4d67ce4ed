package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mcoot/tictactoe-client/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w (stdout when nil)
func NewOutput(format string, w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.Status:
		o.printStatus(v)
	case NewGameResult:
		o.printNewGameResult(v)
	case GameView:
		o.printGameView(v)
	case CurrentGame:
		o.printCurrentGame(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// NewGameResult is printed after a game is created
type NewGameResult struct {
	Status  model.Status  `json:"status"`
	GameKey model.GameKey `json:"game_key"`
}

// GameView is a snapshot of the root view state
type GameView struct {
	CurrentGameKey model.GameKey `json:"current_game_key"`
	Table          model.Table   `json:"table"`
	CurrentPlayer  model.Marker  `json:"current_player"`
	Board          model.Board   `json:"board"`
	Status         model.Status  `json:"status"`
}

// CurrentGame is the stored current game key
type CurrentGame struct {
	GameKey model.GameKey `json:"game_key"`
}

func (o *Output) printStatus(s model.Status) {
	if s.IsZero() {
		return
	}
	_, _ = fmt.Fprintf(o.w, "[%s] %s\n", s.AlertStatus, s.Messages)
}

func (o *Output) printNewGameResult(r NewGameResult) {
	o.printStatus(r.Status)
	_, _ = fmt.Fprintf(o.w, "Game: %s\n", r.GameKey)
}

func (o *Output) printCurrentGame(c CurrentGame) {
	if c.GameKey == "" {
		_, _ = fmt.Fprintln(o.w, "No current game")
		return
	}
	_, _ = fmt.Fprintf(o.w, "Current game: %s\n", c.GameKey)
}

func (o *Output) printGameView(v GameView) {
	o.printStatus(v.Status)
	if !v.Table.IsEmpty() {
		_, _ = fmt.Fprintf(o.w, "Game: %s\n", v.Table.URLSafeGameKey)
		_, _ = fmt.Fprintf(o.w, "To play: %s\n", v.Table.CurrentPlayer)
	}
	if v.CurrentGameKey != "" && v.CurrentGameKey != v.Table.URLSafeGameKey {
		_, _ = fmt.Fprintf(o.w, "Current game: %s\n", v.CurrentGameKey)
	}
	_, _ = fmt.Fprintln(o.w)
	o.printBoard(v.Board)
}

func (o *Output) printBoard(b model.Board) {
	// Print column headers
	_, _ = fmt.Fprintln(o.w, "     0  1  2 ")
	_, _ = fmt.Fprintln(o.w, "   +---------+")

	for row, cells := range b.Rows() {
		_, _ = fmt.Fprintf(o.w, " %d |", row)
		for _, cell := range cells {
			if cell == "" {
				_, _ = fmt.Fprint(o.w, " . ")
			} else {
				_, _ = fmt.Fprintf(o.w, " %s ", cell.Symbol())
			}
		}
		_, _ = fmt.Fprintln(o.w, "|")
	}

	_, _ = fmt.Fprintln(o.w, "   +---------+")
}

package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/web/templates/layout"
)

// HomeData holds the root view state shown on the home page
type HomeData struct {
	layout.PageData
	CurrentGameKey model.GameKey
	Table          model.Table
	CurrentPlayer  model.Marker
	Board          model.Board
}

// Home renders the home page
func Home(data HomeData) templ.Component {
	return layout.Page(data.PageData, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section id="actions">
<a id="open-create-user" href="/dialogs/create-user">Create user</a>
<a id="open-new-game" href="/dialogs/new-game">New game</a>
</section>
`)

		b.WriteString(`<section id="current-game">
`)
		if data.CurrentGameKey == "" {
			b.WriteString(`<p class="empty">No current game</p>
`)
		} else {
			fmt.Fprintf(&b, `<p>Current game: <code id="current-game-key">%s</code></p>
<form method="post" action="/games/get"><input type="hidden" name="game_key" value="%s"><button type="submit">Load current game</button></form>
`, templ.EscapeString(string(data.CurrentGameKey)), templ.EscapeString(string(data.CurrentGameKey)))
		}
		b.WriteString(`<form id="get-game" method="post" action="/games/get">
<label>Game key <input type="text" name="game_key"></label>
<button type="submit">Get game</button>
</form>
</section>
`)

		b.WriteString(`<section id="table">
`)
		if !data.Table.IsEmpty() {
			fmt.Fprintf(&b, `<p>Game: <code id="table-game-key">%s</code></p>
<p>To play: <span id="table-current-player">%s</span></p>
`, templ.EscapeString(string(data.Table.URLSafeGameKey)), templ.EscapeString(string(data.Table.CurrentPlayer)))
		}
		b.WriteString(`</section>
`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		return Board(data.Board, data.CurrentPlayer).Render(ctx, w)
	}))
}

// Board renders the 3x3 grid
func Board(board model.Board, currentPlayer model.Marker) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<table id="board" data-current-player="%s">
`, templ.EscapeString(string(currentPlayer)))
		for row, cells := range board.Rows() {
			b.WriteString("<tr>")
			for col, cell := range cells {
				symbol := ""
				if cell != "" {
					symbol = cell.Symbol()
				}
				fmt.Fprintf(&b, `<td class="cell" data-index="%d">%s</td>`, row*3+col, templ.EscapeString(symbol))
			}
			b.WriteString("</tr>\n")
		}
		b.WriteString("</table>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

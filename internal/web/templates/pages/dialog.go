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

// CreateUserData holds the create-user dialog's form
type CreateUserData struct {
	layout.PageData
	User model.UserForm
}

// NewGameData holds the new-game dialog's form
type NewGameData struct {
	layout.PageData
	NewGame model.NewGameForm
}

// CreateUserDialog renders the create-user dialog
func CreateUserDialog(data CreateUserData) templ.Component {
	return layout.Page(data.PageData, dialog("create-user", "Create user", []field{
		{Name: "user_name", Label: "User name", Value: data.User.UserName, Required: true},
		{Name: "email", Label: "Email", Type: "email", Value: data.User.Email},
	}))
}

// NewGameDialog renders the new-game dialog
func NewGameDialog(data NewGameData) templ.Component {
	return layout.Page(data.PageData, dialog("new-game", "New game", []field{
		{Name: "user_name1", Label: "Player 1", Value: data.NewGame.UserName1, Required: true},
		{Name: "user_name2", Label: "Player 2", Value: data.NewGame.UserName2, Required: true},
	}))
}

type field struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Required bool
}

func dialog(kind, heading string, fields []field) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<dialog id="dialog-%s" open>
<h2>%s</h2>
<form id="dialog-form" method="post" action="/dialogs/%s">
`, kind, templ.EscapeString(heading), kind)

		for _, f := range fields {
			inputType := f.Type
			if inputType == "" {
				inputType = "text"
			}
			required := ""
			if f.Required {
				required = " required"
			}
			fmt.Fprintf(&b, `<label>%s <input type="%s" name="%s" value="%s"%s></label>
`, templ.EscapeString(f.Label), inputType, f.Name, templ.EscapeString(f.Value), required)
		}

		fmt.Fprintf(&b, `<button type="submit">Save</button>
</form>
<form id="dialog-close" method="post" action="/dialogs/%s/close"><button type="submit">Close</button></form>
</dialog>
`, kind)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

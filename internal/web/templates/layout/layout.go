package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// FlashMessage is a one-off status shown at the top of a page
type FlashMessage struct {
	Type    string // "success" or "warning"
	Message string
}

// PageData is shared by every page
type PageData struct {
	Title string
	Flash *FlashMessage
}

// Page wraps body in the site chrome
func Page(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s | Tic Tac Toe</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
.alert-success { color: #155724; background: #d4edda; padding: .5rem; }
.alert-warning { color: #856404; background: #fff3cd; padding: .5rem; }
#board { border-collapse: collapse; }
#board td { width: 3rem; height: 3rem; border: 1px solid #333; text-align: center; font-size: 1.5rem; }
</style>
</head>
<body>
<nav><a href="/">Tic Tac Toe</a></nav>
<main>
`, templ.EscapeString(data.Title)); err != nil {
			return err
		}

		if err := Flash(data.Flash).Render(ctx, w); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

// Flash renders a status alert, or nothing when flash is nil
func Flash(flash *FlashMessage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if flash == nil || flash.Message == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<div id="status" class="alert alert-%s" role="alert">%s</div>
`, templ.EscapeString(flash.Type), templ.EscapeString(flash.Message))
		return err
	})
}

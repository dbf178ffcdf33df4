// Package templates renders the HTML for the stock lookup page. Components
// are hand-written templ.Component values so they compose with each other
// and render straight to the response writer.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// esc escapes s for safe inclusion in HTML text and attribute values.
func esc(s string) string {
	return templ.EscapeString(s)
}

// render writes each fragment in order, stopping at the first write error.
func render(w io.Writer, fragments ...string) error {
	for _, f := range fragments {
		if _, err := io.WriteString(w, f); err != nil {
			return err
		}
	}
	return nil
}

// renderChild renders a nested component, tolerating a nil component.
func renderChild(ctx context.Context, w io.Writer, c templ.Component) error {
	if c == nil {
		return nil
	}
	return c.Render(ctx, w)
}

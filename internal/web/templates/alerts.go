package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Status is a one-line outcome banner shown above the preview table.
type Status struct {
	Tone    string // info, success, or error
	Message string
	Detail  string // optional second line with a suggested action
	Code    string // support code shown for errors, empty otherwise
}

// StatusAlert renders a status banner. A zero Message renders nothing.
func StatusAlert(s Status) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if s.Message == "" {
			return nil
		}
		tone := s.Tone
		switch tone {
		case "success", "error":
		default:
			tone = "info"
		}
		if err := render(w,
			`<div class="alert alert-`, tone, `" role="status">`,
			`<p class="alert-message">`, esc(s.Message), `</p>`,
		); err != nil {
			return err
		}
		if s.Detail != "" {
			if err := render(w, `<p class="alert-detail">`, esc(s.Detail), `</p>`); err != nil {
				return err
			}
		}
		if s.Code != "" {
			if err := render(w, `<p class="alert-code">Code: `, esc(s.Code), `</p>`); err != nil {
				return err
			}
		}
		return render(w, `</div>`)
	})
}

// ErrorAlert renders an error banner with an action hint and support code.
func ErrorAlert(message, action, code string) templ.Component {
	return StatusAlert(Status{
		Tone:    "error",
		Message: message,
		Detail:  action,
		Code:    code,
	})
}

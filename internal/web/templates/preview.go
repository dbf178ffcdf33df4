package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/stocktab/stocktab/internal/core"
)

// PreviewTable renders the loaded sheet as an HTML table. The highlighted
// row, if any, carries the row-highlight class so the stylesheet can mark
// the last updated record.
func PreviewTable(p core.Preview) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p.FileName == "" {
			return render(w,
				`<p class="empty-state">No spreadsheet loaded yet. Upload a CSV, XLSX, or XLS file to get started.</p>`,
			)
		}

		if err := render(w,
			`<div class="preview">`,
			`<p class="preview-caption"><strong>`, esc(p.FileName), `</strong> &middot; `,
			strconv.Itoa(p.TotalRows), ` row`, plural(p.TotalRows), `</p>`,
		); err != nil {
			return err
		}

		if err := render(w, `<table class="preview-table"><thead><tr>`); err != nil {
			return err
		}
		for _, label := range p.Header {
			if err := render(w, `<th>`, esc(label), `</th>`); err != nil {
				return err
			}
		}
		if err := render(w, `</tr></thead><tbody>`); err != nil {
			return err
		}

		for i, row := range p.Rows {
			rowTag := `<tr>`
			if i == p.Highlight {
				rowTag = `<tr class="row-highlight">`
			}
			if err := render(w, rowTag); err != nil {
				return err
			}
			// Ragged rows render as many cells as the header has columns.
			for col := range p.Header {
				if err := render(w, `<td>`, esc(row.Cell(col)), `</td>`); err != nil {
					return err
				}
			}
			if err := render(w, `</tr>`); err != nil {
				return err
			}
		}

		if err := render(w, `</tbody></table>`); err != nil {
			return err
		}

		if p.Truncated {
			if err := render(w,
				`<p class="preview-truncated">Showing the first `, strconv.Itoa(len(p.Rows)),
				` of `, strconv.Itoa(p.TotalRows), ` rows. The full sheet stays searchable.</p>`,
			); err != nil {
				return err
			}
		}

		return render(w, `</div>`)
	})
}

// Workspace renders the status banner plus preview table. It is the swap
// target for form submissions, so both full pages and fragments share it.
func Workspace(p core.Preview, status *Status) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := render(w, `<div id="workspace">`); err != nil {
			return err
		}
		if status != nil {
			if err := renderChild(ctx, w, StatusAlert(*status)); err != nil {
				return err
			}
		}
		if err := renderChild(ctx, w, PreviewTable(p)); err != nil {
			return err
		}
		return render(w, `</div>`)
	})
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

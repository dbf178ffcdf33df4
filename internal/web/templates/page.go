package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/stocktab/stocktab/internal/core"
)

// Page renders the full stock lookup page: upload form, search form, and
// the workspace holding the status banner and sheet preview.
func Page(p core.Preview, status *Status) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := render(w,
			`<!DOCTYPE html>`,
			`<html lang="en"><head>`,
			`<meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>Stock Lookup</title>`,
			`<link rel="stylesheet" href="/static/app.css">`,
			`</head><body>`,
			`<main class="container">`,
			`<h1>Stock Lookup</h1>`,
		); err != nil {
			return err
		}

		if err := renderChild(ctx, w, uploadForm()); err != nil {
			return err
		}
		if err := renderChild(ctx, w, searchForm(p.FileName != "")); err != nil {
			return err
		}
		if err := renderChild(ctx, w, Workspace(p, status)); err != nil {
			return err
		}

		return render(w, `</main></body></html>`)
	})
}

// uploadForm renders the spreadsheet upload form. Re-uploading replaces the
// current sheet wholesale.
func uploadForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(w,
			`<form class="upload-form" method="post" action="/upload" enctype="multipart/form-data">`,
			`<label for="file">Spreadsheet (CSV, XLSX, or XLS)</label>`,
			`<input type="file" id="file" name="file" accept=".csv,.xlsx,.xlsm,.xls" required>`,
			`<button type="submit">Upload</button>`,
			`</form>`,
		)
	})
}

// searchForm renders the key search and increment inputs. The increment
// widget floors at 1 but submits free text, so blank falls back to the
// default increment server-side.
func searchForm(enabled bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		disabled := ""
		if !enabled {
			disabled = ` disabled`
		}
		return render(w,
			`<form class="search-form" method="post" action="/search">`,
			`<label for="key">SKU or product code</label>`,
			`<input type="text" id="key" name="key" placeholder="e.g. A2"`, disabled, `>`,
			`<label for="increment">Add to stock</label>`,
			`<input type="number" id="increment" name="increment" min="1" step="any" placeholder="1"`, disabled, `>`,
			`<button type="submit"`, disabled, `>Find &amp; add</button>`,
			`</form>`,
		)
	})
}

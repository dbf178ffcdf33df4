package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stocktab/stocktab/internal/core"
)

func renderToString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return sb.String()
}

func TestStatusAlert(t *testing.T) {
	html := renderToString(t, StatusAlert(Status{
		Tone:    "error",
		Message: "No row matched that key",
		Detail:  "Check the key",
		Code:    "SRCH004",
	}))

	for _, want := range []string{"alert-error", "No row matched that key", "Check the key", "SRCH004"} {
		if !strings.Contains(html, want) {
			t.Errorf("alert missing %q: %s", want, html)
		}
	}
}

func TestStatusAlert_EmptyMessage(t *testing.T) {
	if html := renderToString(t, StatusAlert(Status{})); html != "" {
		t.Errorf("empty status rendered %q, want nothing", html)
	}
}

func TestStatusAlert_UnknownToneFallsBackToInfo(t *testing.T) {
	html := renderToString(t, StatusAlert(Status{Tone: "shouting", Message: "hello"}))
	if !strings.Contains(html, "alert-info") {
		t.Errorf("unknown tone should render as info: %s", html)
	}
}

func TestPreviewTable_EmptyState(t *testing.T) {
	html := renderToString(t, PreviewTable(core.Preview{Highlight: core.HighlightNone}))
	if !strings.Contains(html, "No spreadsheet loaded yet") {
		t.Errorf("missing empty state: %s", html)
	}
}

func TestPreviewTable(t *testing.T) {
	p := core.Preview{
		FileName:  "stock.csv",
		Header:    core.Row{"SKU", "Stock Level"},
		Rows:      []core.Row{{"A1", "3"}, {"A2", "9"}},
		TotalRows: 2,
		Highlight: 1,
	}
	html := renderToString(t, PreviewTable(p))

	for _, want := range []string{"stock.csv", "2 rows", "<th>SKU</th>", "<td>A1</td>", "<td>9</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("table missing %q", want)
		}
	}
	if !strings.Contains(html, `<tr class="row-highlight"><td>A2</td>`) {
		t.Errorf("highlighted row not marked: %s", html)
	}
}

func TestPreviewTable_RaggedRowPadsToHeader(t *testing.T) {
	p := core.Preview{
		FileName:  "stock.csv",
		Header:    core.Row{"SKU", "Name", "Stock Level"},
		Rows:      []core.Row{{"A1"}},
		TotalRows: 1,
		Highlight: core.HighlightNone,
	}
	html := renderToString(t, PreviewTable(p))

	if got := strings.Count(html, "<td>"); got != 3 {
		t.Errorf("cell count = %d, want 3 (one per header column)", got)
	}
}

func TestPreviewTable_EscapesCellContent(t *testing.T) {
	p := core.Preview{
		FileName:  "stock.csv",
		Header:    core.Row{"SKU"},
		Rows:      []core.Row{{`<script>alert("x")</script>`}},
		TotalRows: 1,
		Highlight: core.HighlightNone,
	}
	html := renderToString(t, PreviewTable(p))

	if strings.Contains(html, "<script>") {
		t.Error("cell content was not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("escaped content missing: %s", html)
	}
}

func TestPreviewTable_TruncationNotice(t *testing.T) {
	rows := make([]core.Row, 200)
	for i := range rows {
		rows[i] = core.Row{"A1", "1"}
	}
	p := core.Preview{
		FileName:  "big.csv",
		Header:    core.Row{"SKU", "Stock Level"},
		Rows:      rows,
		TotalRows: 450,
		Truncated: true,
		Highlight: core.HighlightNone,
	}
	html := renderToString(t, PreviewTable(p))

	if !strings.Contains(html, "first 200 of 450 rows") {
		t.Errorf("truncation notice missing: %s", html)
	}
}

func TestPage(t *testing.T) {
	p := core.Preview{Highlight: core.HighlightNone}
	html := renderToString(t, Page(p, nil))

	for _, want := range []string{"<!DOCTYPE html>", "Stock Lookup", `action="/upload"`, `action="/search"`, `id="workspace"`} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if !strings.Contains(html, " disabled") {
		t.Error("search form should be disabled before a sheet is loaded")
	}
}

func TestPage_SearchEnabledWithSheet(t *testing.T) {
	p := core.Preview{
		FileName:  "stock.csv",
		Header:    core.Row{"SKU", "Stock Level"},
		Rows:      []core.Row{{"A1", "3"}},
		TotalRows: 1,
		Highlight: core.HighlightNone,
	}
	html := renderToString(t, Page(p, nil))

	if strings.Contains(html, " disabled") {
		t.Error("search form should be enabled once a sheet is loaded")
	}
}

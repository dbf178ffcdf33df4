package core

import (
	"sync"
	"time"
)

// Row is one spreadsheet row of raw cell strings. Rows may be shorter than
// the header; missing positions read as empty via Cell.
type Row []string

// Cell returns the value at col, or "" when the row is too short.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Sheet is the in-memory grid loaded from one uploaded file.
// Header labels are raw text; data rows align positionally with the header.
type Sheet struct {
	Header Row
	Rows   []Row
}

// RowCount returns the number of data rows.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}

// HeaderIndex maps normalized header labels to column positions.
// Built once per loaded sheet; duplicate labels keep the last occurrence.
type HeaderIndex map[string]int

// ColumnUnresolved marks a logical field that matched no header label.
const ColumnUnresolved = -1

// Resolution maps the two logical fields to concrete column indices for the
// currently loaded sheet. It must be recomputed whenever a new sheet is
// loaded; applying a stale resolution to a new sheet is a correctness bug.
type Resolution struct {
	Key      int // key field (SKU / product code) column, or ColumnUnresolved
	Quantity int // stock level column, or ColumnUnresolved
}

// Complete reports whether both logical fields resolved to a column.
func (r Resolution) Complete() bool {
	return r.Key != ColumnUnresolved && r.Quantity != ColumnUnresolved
}

// HighlightNone means no row is highlighted in the preview.
const HighlightNone = -1

// Session holds the state of one browser session: the loaded sheet, its
// column resolution, and the transient highlight. Operations mutate the
// session they are given; there is no ambient global state.
type Session struct {
	mu sync.Mutex // guards all fields; held by Service for the span of one operation

	ID         string
	FileName   string
	Sheet      *Sheet
	Resolution Resolution
	Highlight  int // data-row index of the last updated row, or HighlightNone
	LoadedAt   time.Time
	LastActive time.Time
}

// Loaded reports whether the session has a sheet installed.
func (s *Session) Loaded() bool {
	return s.Sheet != nil
}

// SearchResult describes a successful stock update.
type SearchResult struct {
	Key      string
	RowIndex int // data-row index of the matched row
	Line     int // 1-based spreadsheet line (header is line 1)
	Previous float64
	Next     float64
}

// Preview is the render-ready slice of a session's sheet: the header, at
// most MaxRows data rows, and the highlight position when it falls inside
// the window. TotalRows reports the full sheet size so the UI can say
// "showing 200 of 12,431 rows".
type Preview struct {
	FileName  string
	Header    Row
	Rows      []Row
	TotalRows int
	Truncated bool
	Highlight int // index into Rows, or HighlightNone
}

package core

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// NewSession creates an empty session. No sheet is loaded; any search
// against it fails with ErrNoFileLoaded.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		Highlight:  HighlightNone,
		LoadedAt:   now,
		LastActive: now,
	}
}

// InstallSheet replaces the session's sheet wholesale: column resolution is
// recomputed for the new header and the highlight is cleared. Any state from
// a previously loaded file is discarded.
func (s *Session) InstallSheet(fileName string, sheet *Sheet) {
	s.FileName = fileName
	s.Sheet = sheet
	s.Resolution = ResolveFields(sheet.Header)
	s.Highlight = HighlightNone
	s.LoadedAt = time.Now()
	s.LastActive = s.LoadedAt
}

// Clear drops the loaded sheet, returning the session to its empty state.
// Used when a reload fails to parse.
func (s *Session) Clear() {
	s.FileName = ""
	s.Sheet = nil
	s.Resolution = Resolution{}
	s.Highlight = HighlightNone
	s.LastActive = time.Now()
}

// ParseIncrement converts the raw form value to an increment amount.
// Blank or unparsable input yields NaN, which ApplyIncrement treats as
// "use the default of 1".
func ParseIncrement(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Search runs the update state machine against the session:
//
//	no sheet             -> ErrNoFileLoaded
//	blank key            -> ErrBlankSearchKey    (session untouched)
//	unresolved column(s) -> ErrColumnsUnresolved (session untouched)
//	below minIncrement   -> ErrIncrementTooSmall (session untouched)
//	no matching row      -> ErrRowNotFound       (highlight cleared, sheet untouched)
//	match                -> increment applied copy-on-write, new sheet
//	                        installed, highlight moved to the matched row
//
// minIncrement is the optional configured floor; nil leaves the computation
// permissive (negative increments decrease stock).
//
// Input-validation rejections deliberately leave an existing highlight in
// place; only a miss or a new file load clears it.
func (s *Session) Search(rawKey string, amount float64, minIncrement *float64) (SearchResult, error) {
	s.LastActive = time.Now()

	if !s.Loaded() {
		return SearchResult{}, ErrNoFileLoaded
	}

	key := strings.TrimSpace(rawKey)
	if key == "" {
		return SearchResult{}, ErrBlankSearchKey
	}

	if !s.Resolution.Complete() {
		return SearchResult{}, ErrColumnsUnresolved
	}

	effective := amount
	if math.IsNaN(effective) || math.IsInf(effective, 0) {
		effective = DefaultIncrement
	}
	if minIncrement != nil && effective < *minIncrement {
		return SearchResult{}, ErrIncrementTooSmall
	}

	rowIdx := LocateRow(s.Sheet, s.Resolution.Key, key)
	if rowIdx == RowNotFound {
		s.Highlight = HighlightNone
		return SearchResult{}, ErrRowNotFound
	}

	updated, prev, next := ApplyIncrement(s.Sheet, rowIdx, s.Resolution.Quantity, effective)
	s.Sheet = updated
	s.Highlight = rowIdx

	return SearchResult{
		Key:      key,
		RowIndex: rowIdx,
		Line:     rowIdx + 2, // header occupies line 1
		Previous: prev,
		Next:     next,
	}, nil
}

// BuildPreview returns the render-ready window of the session's sheet,
// capped at maxRows data rows. The highlight survives only when the row
// falls inside the window.
func (s *Session) BuildPreview(maxRows int) Preview {
	p := Preview{
		FileName:  s.FileName,
		Highlight: HighlightNone,
	}
	if !s.Loaded() {
		return p
	}

	p.Header = s.Sheet.Header
	p.TotalRows = s.Sheet.RowCount()

	rows := s.Sheet.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
		p.Truncated = true
	}
	p.Rows = rows

	if s.Highlight != HighlightNone && s.Highlight < len(rows) {
		p.Highlight = s.Highlight
	}
	return p
}

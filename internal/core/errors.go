package core

import (
	"errors"
	"fmt"
)

// ErrEmptyFile indicates the uploaded file parsed to zero rows.
var ErrEmptyFile = errors.New("empty file: no rows found")

// ErrNoFileLoaded indicates a search was attempted before any sheet was loaded.
var ErrNoFileLoaded = errors.New("no file loaded")

// ErrBlankSearchKey indicates the search key was empty after trimming.
var ErrBlankSearchKey = errors.New("blank search key")

// ErrColumnsUnresolved indicates one or both logical fields could not be
// mapped to a column of the loaded sheet.
var ErrColumnsUnresolved = errors.New("columns unresolved: sheet is missing a SKU or stock level column")

// ErrRowNotFound indicates no data row matched the search key. This is a
// negative search result rather than a fault; the sheet is left untouched.
var ErrRowNotFound = errors.New("row not found")

// ErrIncrementTooSmall indicates the increment fell below the configured
// floor. Only returned when SEARCH_MIN_INCREMENT is set.
var ErrIncrementTooSmall = errors.New("increment below configured minimum")

// ErrSessionNotFound indicates the session ID is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// ParseError wraps a failure from one of the spreadsheet parsers.
type ParseError struct {
	FileName string
	Format   string // "csv", "xlsx", "xls"
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s file %q: %v", e.Format, e.FileName, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapError_KnownPatterns(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{ErrEmptyFile, "FILE003"},
		{ErrNoFileLoaded, "SRCH001"},
		{ErrBlankSearchKey, "SRCH002"},
		{ErrColumnsUnresolved, "SRCH003"},
		{ErrRowNotFound, "SRCH004"},
		{ErrIncrementTooSmall, "SRCH005"},
		{ErrSessionNotFound, "SESS001"},
		{ErrTooManyUploads, "SESS002"},
		{&ParseError{FileName: "a.xlsx", Format: "xlsx", Err: errors.New("bad zip")}, "FILE002"},
		{&ParseError{FileName: "a.csv", Format: "csv", Err: errors.New("bare quote")}, "FILE002"},
		{errors.New("http: request body too large"), "FILE001"},
		{errors.New("rate limit exceeded"), "RATE001"},
	}

	for _, tt := range tests {
		msg := MapError(tt.err)
		if msg.Code != tt.code {
			t.Errorf("MapError(%v).Code = %q, want %q", tt.err, msg.Code, tt.code)
		}
		if msg.Message == "" {
			t.Errorf("MapError(%v) has empty message", tt.err)
		}
	}
}

func TestMapError_WrappedErrors(t *testing.T) {
	err := fmt.Errorf("load sheet: %w", ErrEmptyFile)
	if msg := MapError(err); msg.Code != "FILE003" {
		t.Errorf("MapError(wrapped).Code = %q, want FILE003", msg.Code)
	}
}

func TestMapError_UnknownFallsBack(t *testing.T) {
	msg := MapError(errors.New("something inexplicable"))
	if msg.Code != "ERR000" {
		t.Errorf("MapError(unknown).Code = %q, want ERR000", msg.Code)
	}
}

func TestMapError_Nil(t *testing.T) {
	if msg := MapError(nil); msg.Code != "ERR000" {
		t.Errorf("MapError(nil).Code = %q, want ERR000", msg.Code)
	}
}

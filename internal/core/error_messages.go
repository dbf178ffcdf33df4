// error_messages.go defines user-facing messages with codes for support
// reference. When users encounter errors, they can quote the error code for
// faster diagnosis.
//
// Error codes are grouped by category:
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: file exceeds the maximum size limit
//	          Action: Split the file or raise UPLOAD_MAX_FILE_SIZE
//	          Patterns: "file too large", "request body too large"
//
//	FILE002 - Unreadable file: the file could not be parsed
//	          Action: Ensure the file is a valid CSV, XLSX, or XLS export
//	          Patterns: "parse csv", "parse xlsx", "parse xls"
//
//	FILE003 - Empty file: the uploaded file has no rows
//	          Action: Upload a file with a header row and data rows
//	          Patterns: "empty file"
//
//	FILE004 - No file: no file was selected
//	          Action: Choose a spreadsheet file to upload
//	          Patterns: "no file provided"
//
// # Search Errors (SRCH001-SRCH099)
//
//	SRCH001 - No file loaded: search attempted before an upload
//	          Action: Upload a spreadsheet first
//	          Patterns: "no file loaded"
//
//	SRCH002 - Blank key: the search key was empty
//	          Action: Enter a SKU or product code to search for
//	          Patterns: "blank search key"
//
//	SRCH003 - Columns missing: the sheet has no recognizable SKU or
//	          stock level column
//	          Action: Add a "SKU" (or "Product Code") and a "Stock Level"
//	          column to the sheet header
//	          Patterns: "columns unresolved"
//
//	SRCH004 - Not found: no row matched the search key (soft outcome)
//	          Action: Check the key; matching is exact and case-sensitive
//	          Patterns: "row not found"
//
//	SRCH005 - Increment too small: below the configured floor
//	          Action: Use an increment of at least SEARCH_MIN_INCREMENT
//	          Patterns: "below configured minimum"
//
// # Session Errors (SESS001-SESS099)
//
//	SESS001 - Session expired: the session is unknown or was evicted
//	          Action: Reload the page and upload the file again
//	          Patterns: "session not found"
//
//	SESS002 - System busy: too many uploads being parsed at once
//	          Action: Wait a moment and try again
//	          Patterns: "too many concurrent uploads"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Rate limited: too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error, check application logs for the original cause.
//
// Patterns are matched case-insensitively with strings.Contains; the first
// matching pattern wins, so more specific patterns come first.
package core

import "strings"

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// File errors
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "The file exceeds the maximum upload size",
			Action:  "Split the file into smaller parts",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The file exceeds the maximum upload size",
			Action:  "Split the file into smaller parts",
			Code:    "FILE001",
		},
	},
	{
		pattern: "parse csv",
		msg: UserMessage{
			Message: "The file could not be read as CSV",
			Action:  "Ensure the file is comma-separated with consistent quoting",
			Code:    "FILE002",
		},
	},
	{
		pattern: "parse xlsx",
		msg: UserMessage{
			Message: "The file could not be read as an Excel workbook",
			Action:  "Re-export the file as .xlsx and try again",
			Code:    "FILE002",
		},
	},
	{
		pattern: "parse xls",
		msg: UserMessage{
			Message: "The file could not be read as a legacy Excel workbook",
			Action:  "Re-export the file as .xlsx or .csv and try again",
			Code:    "FILE002",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file has no rows",
			Action:  "Upload a file with a header row and data rows",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Choose a spreadsheet file to upload",
			Code:    "FILE004",
		},
	},

	// Search errors
	{
		pattern: "no file loaded",
		msg: UserMessage{
			Message: "No spreadsheet is loaded yet",
			Action:  "Upload a spreadsheet before searching",
			Code:    "SRCH001",
		},
	},
	{
		pattern: "blank search key",
		msg: UserMessage{
			Message: "The search key is empty",
			Action:  "Enter a SKU or product code to search for",
			Code:    "SRCH002",
		},
	},
	{
		pattern: "columns unresolved",
		msg: UserMessage{
			Message: "The sheet is missing a SKU or stock level column",
			Action:  `Ensure the header contains a "SKU" (or "Product Code") column and a "Stock Level" column`,
			Code:    "SRCH003",
		},
	},
	{
		pattern: "row not found",
		msg: UserMessage{
			Message: "No row matched that key",
			Action:  "Check the key; matching is exact and case-sensitive",
			Code:    "SRCH004",
		},
	},
	{
		pattern: "below configured minimum",
		msg: UserMessage{
			Message: "The increment is below the configured minimum",
			Action:  "Use a larger increment",
			Code:    "SRCH005",
		},
	},

	// Session errors
	{
		pattern: "session not found",
		msg: UserMessage{
			Message: "Your session has expired",
			Action:  "Reload the page and upload the file again",
			Code:    "SESS001",
		},
	},
	{
		pattern: "too many concurrent uploads",
		msg: UserMessage{
			Message: "The server is busy parsing other uploads",
			Action:  "Wait a moment and try again",
			Code:    "SESS002",
		},
	},

	// Rate limiting
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is the fallback when no pattern matches.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message with a
// support code. Never returns a zero UserMessage.
func MapError(err error) UserMessage {
	if err == nil {
		return defaultMessage
	}

	text := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(text, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

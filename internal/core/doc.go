// Package core provides the business logic for spreadsheet stock updates.
//
// This package is the heart of the application, containing all domain logic
// independent of any UI or transport layer. It can be driven by web handlers,
// CLI tools, or tests without modification.
//
// # Concepts
//
//   - Sheet: an in-memory grid loaded from a CSV/XLSX/XLS file. The header
//     row is kept separate from data rows; column identity is positional
//     once resolved.
//   - Logical fields: the key field (SKU / product code) and the quantity
//     field (stock level) are located by fuzzy header matching against a
//     prioritized candidate list, see [ResolveFields].
//   - Session: the mutable state of one browser session (current sheet,
//     column resolution, highlighted row). Operations take the session
//     explicitly; there is no package-level state.
//   - Service: the entry point used by the web layer. Owns the session
//     registry, the parse limiter, and the configured policies.
//
// # Update flow
//
//  1. [Service.LoadSheet] parses the upload, validates non-emptiness, and
//     installs sheet + resolution into the session, replacing any prior
//     state wholesale.
//  2. [Service.Search] runs the orchestration state machine: blank-key and
//     unresolved-column rejections leave the session as-is; a miss clears
//     the highlight; a hit applies the increment copy-on-write and moves
//     the highlight to the matched row.
//
// # Error Handling
//
// Failures are sentinel errors ([ErrNoFileLoaded], [ErrBlankSearchKey],
// [ErrColumnsUnresolved], [ErrRowNotFound], ...) plus [*ParseError] for
// parser faults. Technical errors are mapped to user-facing messages with
// support codes by [MapError]:
//
//   - FILE001-FILE099: file errors (size, parse, empty)
//   - SRCH001-SRCH099: search errors (no file, blank key, columns, miss)
//   - SESS001-SESS099: session errors (expired, busy)
package core

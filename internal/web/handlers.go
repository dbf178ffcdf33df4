package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/stocktab/stocktab/internal/core"
	"github.com/stocktab/stocktab/internal/web/templates"
)

// sessionCookie names the browser cookie tying a visitor to their loaded sheet.
const sessionCookie = "session_id"

var errNoFile = errors.New("no file provided")

// sessionID returns the visitor's session ID, allocating a fresh session and
// setting the cookie when there is none or the old one was evicted.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && s.service.HasSession(c.Value) {
		return c.Value
	}

	id := s.service.NewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// handleIndex renders the stock lookup page with whatever the session has
// loaded. A reload after an update shows the sheet without the highlight.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	preview, err := s.service.SessionPreview(id)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	// The highlight marks the row of the most recent update response only.
	preview.Highlight = core.HighlightNone

	s.renderPage(w, r, preview, nil)
}

// handleUpload parses the posted spreadsheet and replaces the session's
// sheet with it.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		s.respondError(w, r, fmt.Errorf("file too large or invalid form: %w", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, errNoFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	preview, err := s.service.LoadSheet(r.Context(), id, header.Filename, data)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, core.ErrTooManyUploads) {
			status = http.StatusServiceUnavailable
		}
		s.respondError(w, r, err, status)
		return
	}

	s.renderPage(w, r, preview, &templates.Status{
		Tone:    "info",
		Message: fmt.Sprintf("Loaded %s: %d rows.", preview.FileName, preview.TotalRows),
	})
}

// handleSearch looks up a row by key, applies the stock increment, and
// re-renders the sheet with the updated row highlighted. Search failures
// re-render the current sheet with an error banner rather than a bare
// error page, since the sheet itself is still valid.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	result, preview, err := s.service.Search(id, r.FormValue("key"), r.FormValue("increment"))
	if err != nil {
		if errors.Is(err, core.ErrSessionNotFound) {
			s.respondError(w, r, err, http.StatusNotFound)
			return
		}
		if wantsJSON(r) {
			respondErrorJSON(w, core.MapError(err), http.StatusUnprocessableEntity)
			return
		}
		s.renderPage(w, r, preview, statusMessage(core.MapError(err)))
		return
	}

	s.renderPage(w, r, preview, &templates.Status{
		Tone: "success",
		Message: fmt.Sprintf("Updated %q on line %d: stock level %s is now %s.",
			result.Key, result.Line, core.FormatQuantity(result.Previous), core.FormatQuantity(result.Next)),
	})
}

// handleHealthz reports liveness for deployment probes.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.service.SessionCount(),
	})
}

// renderPage writes the workspace fragment for HTMX requests and the full
// page otherwise.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, preview core.Preview, status *templates.Status) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isHTMX(r) {
		templates.Workspace(preview, status).Render(r.Context(), w)
		return
	}
	templates.Page(preview, status).Render(r.Context(), w)
}

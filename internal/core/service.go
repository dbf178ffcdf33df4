package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stocktab/stocktab/internal/config"
)

// Service provides the core business logic for sheet uploads and stock
// updates. It owns the in-memory session registry; each browser session
// holds at most one loaded sheet.
type Service struct {
	cfg          *config.Config
	limiter      *ParseLimiter
	minIncrement *float64

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService creates a new Service instance from validated configuration.
func NewService(cfg *config.Config) (*Service, error) {
	min, err := cfg.Search.Minimum()
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:          cfg,
		limiter:      NewParseLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime),
		minIncrement: min,
		sessions:     make(map[string]*Session),
	}, nil
}

// NewSessionID allocates a fresh session and returns its ID.
func (s *Service) NewSessionID() string {
	id := uuid.New().String()

	s.mu.Lock()
	s.sessions[id] = NewSession(id)
	s.mu.Unlock()

	return id
}

// session returns the live session for id, or ErrSessionNotFound when the
// ID is unknown (never issued, or evicted by the sweeper).
func (s *Service) session(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// HasSession reports whether id refers to a live session.
func (s *Service) HasSession(id string) bool {
	s.mu.RLock()
	_, ok := s.sessions[id]
	s.mu.RUnlock()
	return ok
}

// LoadSheet parses fileData and installs the result into the session,
// replacing any previously loaded sheet wholesale. On parse failure the
// session is cleared back to its empty state and the error is returned.
func (s *Service) LoadSheet(ctx context.Context, sessionID, fileName string, fileData []byte) (Preview, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Preview{}, err
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return Preview{}, err
	}
	defer s.limiter.Release()

	sheet, err := LoadSheet(fileName, fileData)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err != nil {
		sess.Clear()
		return Preview{}, err
	}

	sess.InstallSheet(fileName, sheet)

	slog.Info("sheet loaded",
		"session_id", sessionID,
		"file", fileName,
		"rows", sheet.RowCount(),
		"key_col", sess.Resolution.Key,
		"quantity_col", sess.Resolution.Quantity,
	)

	return sess.BuildPreview(s.cfg.Preview.MaxRows), nil
}

// Search locates a row by key and applies the stock increment, returning
// the update result and the refreshed preview. Failure semantics are those
// of Session.Search.
func (s *Service) Search(sessionID, rawKey, rawIncrement string) (SearchResult, Preview, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return SearchResult{}, Preview{}, err
	}

	sess.mu.Lock()
	result, err := sess.Search(rawKey, ParseIncrement(rawIncrement), s.minIncrement)
	preview := sess.BuildPreview(s.cfg.Preview.MaxRows)
	sess.mu.Unlock()
	if err != nil {
		return SearchResult{}, preview, err
	}

	slog.Info("stock updated",
		"session_id", sessionID,
		"key", result.Key,
		"line", result.Line,
		"previous", result.Previous,
		"next", result.Next,
	)

	return result, preview, nil
}

// SessionPreview returns the current render state of a session without
// modifying it.
func (s *Service) SessionPreview(sessionID string) (Preview, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Preview{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.BuildPreview(s.cfg.Preview.MaxRows), nil
}

// StartSessionSweeper evicts sessions idle longer than the configured TTL.
// Runs until ctx is cancelled; start it from main as a background job.
func (s *Service) StartSessionSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Session.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted := s.sweepExpired(s.cfg.Session.TTL)
			if evicted > 0 {
				slog.Debug("sessions evicted", "count", evicted)
			}
		}
	}
}

func (s *Service) sweepExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.LastActive.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// SessionCount returns the number of live sessions.
func (s *Service) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

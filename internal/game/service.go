// Package game models a player's walk through the bakery as an explicit state
// machine and keeps one state per session.
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/logger"
	"github.com/osse101/BakeWatt_Go/internal/metrics"
	"github.com/osse101/BakeWatt_Go/internal/repository"
)

// Session is a snapshot of one player's progress
type Session struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service defines the interface for game session operations
type Service interface {
	NewSession(ctx context.Context) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	Dispatch(ctx context.Context, id string, cmd Command) (*Session, error)
	Shutdown(ctx context.Context) error
}

// Options configures the session store
type Options struct {
	Capacity int
	TTL      time.Duration
}

// sessionEntry guards a session so that commands on it apply one at a time
type sessionEntry struct {
	mu      sync.Mutex
	session Session
}

type service struct {
	machine  *Machine
	sessions *expirable.LRU[string, *sessionEntry]

	mu     sync.RWMutex
	closed bool
}

// NewService creates a game service resolving templates through provider
func NewService(provider repository.TemplateProvider, opts Options) Service {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultSessionCapacity
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultSessionTTL
	}

	onEvict := func(_ string, _ *sessionEntry) {
		metrics.GameSessionsActive.Dec()
	}

	return &service{
		machine:  NewMachine(provider),
		sessions: expirable.NewLRU[string, *sessionEntry](opts.Capacity, onEvict, opts.TTL),
	}
}

// NewSession starts a session on the recipe index
func (s *service) NewSession(ctx context.Context) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &sessionEntry{session: Session{
		ID:        uuid.NewString(),
		State:     NewState(),
		CreatedAt: now,
		UpdatedAt: now,
	}}
	s.sessions.Add(entry.session.ID, entry)
	metrics.GameSessionsActive.Inc()

	logger.FromContext(ctx).Info(LogMsgSessionCreated, "session_id", entry.session.ID)
	snapshot := entry.session
	return &snapshot, nil
}

// GetSession returns the current snapshot of a session
func (s *service) GetSession(_ context.Context, id string) (*Session, error) {
	entry, ok := s.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	snapshot := entry.session
	return &snapshot, nil
}

// Dispatch applies a command to a session. A rejected command still returns
// the session so callers can show its notice.
func (s *service) Dispatch(ctx context.Context, id string, cmd Command) (*Session, error) {
	s.mu.RLock()
	err := s.checkOpen()
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	entry, ok := s.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	log := logger.FromContext(ctx)
	next, err := s.machine.Dispatch(ctx, entry.session.State, cmd)
	entry.session.State = next
	entry.session.UpdatedAt = time.Now()
	snapshot := entry.session

	if err != nil {
		metrics.GameCommands.WithLabelValues(string(cmd.Type), metrics.ResultRejected).Inc()
		log.Warn(LogMsgCommandRejected, "session_id", id, "command", cmd.Type, "error", err)
		return &snapshot, err
	}

	metrics.GameCommands.WithLabelValues(string(cmd.Type), metrics.ResultOK).Inc()
	log.Debug(LogMsgCommandDispatched, "session_id", id, "command", cmd.Type, "screen", next.Screen)
	return &snapshot, nil
}

// Shutdown stops accepting new sessions and drops the existing ones
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown, "sessions", s.sessions.Len())

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.sessions.Purge()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// checkOpen must be called with mu held
func (s *service) checkOpen() error {
	if s.closed {
		return fmt.Errorf("%s: %w", ErrMsgServiceShutDown, domain.ErrServiceShuttingDown)
	}
	return nil
}

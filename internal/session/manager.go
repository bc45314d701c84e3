package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/world"
)

// SessionManager owns the active sessions. It hands one to each incoming
// connection and autosaves them on the driver's tick.
type SessionManager struct {
	world *world.World
	saves storage.SaveStore
	pub   Publisher

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(w *world.World, saves storage.SaveStore, pub Publisher) *SessionManager {
	return &SessionManager{
		world:    w,
		saves:    saves,
		pub:      pub,
		sessions: map[string]*Session{},
	}
}

func (m *SessionManager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Tick autosaves every active session.
func (m *SessionManager) Tick(ctx context.Context) error {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	var errs []error
	for _, s := range sessions {
		if err := s.Autosave(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HandleConnection runs a full session on a connection. It blocks until the
// player quits or the connection drops.
func (m *SessionManager) HandleConnection(ctx context.Context, conn io.ReadWriter) error {
	s := New(m.world, conn, m.saves, m.pub)

	m.mu.Lock()
	m.sessions[s.Id()] = s
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.sessions, s.Id())
		m.mu.Unlock()
	}()

	slog.InfoContext(ctx, "session started", "session", s.Id())
	err := s.Play(ctx)
	slog.InfoContext(ctx, "session ended", "session", s.Id(), "error", err)
	return err
}

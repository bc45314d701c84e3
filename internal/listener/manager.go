// Package listener accepts player connections over telnet and ssh and hands
// them to the session layer.
package listener

import (
	"context"
	"io"

	"github.com/pixil98/go-log"
	"github.com/sirupsen/logrus"

	"github.com/pixil98/go-adventure/internal/session"
)

type ConnectionManager struct {
	sm     *session.SessionManager
	logger logrus.FieldLogger
}

func NewConnectionManager(sm *session.SessionManager) *ConnectionManager {
	return &ConnectionManager{sm: sm}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	logger := m.logger
	if logger == nil {
		logger = log.GetLogger(ctx)
	}

	if err := m.sm.HandleConnection(ctx, conn); err != nil {
		logger.WithError(err).Warn("game session ended with error")
	}
}

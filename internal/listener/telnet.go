package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"syscall"

	"github.com/iammegalith/telnet"
)

// TelnetListener serves the game over plain telnet.
type TelnetListener struct {
	port uint16
	cm   *ConnectionManager
}

func NewTelnetListener(port uint16, cm *ConnectionManager) *TelnetListener {
	return &TelnetListener{port: port, cm: cm}
}

func (l *TelnetListener) Start(ctx context.Context) error {
	h := &telnetGameHandler{cm: l.cm}
	h.ctx, h.cancel = context.WithCancel(context.WithoutCancel(ctx))

	svr := telnet.NewServer(fmt.Sprintf(":%d", l.port), h)

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			svr.Stop()
			h.cancel()
			h.wg.Wait()
		case <-stopped:
		}
	}()

	if err := svr.ListenAndServe(); err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("port %d is already in use", l.port)
		}
		return fmt.Errorf("serving telnet on port %d: %w", l.port, err)
	}
	return nil
}

// telnetGameHandler runs one game session per telnet connection. Sessions
// share a context so shutdown cancels them together.
type telnetGameHandler struct {
	cm     *ConnectionManager
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (h *telnetGameHandler) HandleTelnet(conn *telnet.Connection) {
	h.wg.Add(1)
	defer h.wg.Done()
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Warn("closing telnet connection", "error", err)
		}
	}()

	// The session writes bare \n; telnet wants CRLF.
	h.cm.AcceptConnection(h.ctx, newCRLFReadWriter(conn))
}

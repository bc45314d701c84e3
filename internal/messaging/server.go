// Package messaging runs an embedded NATS server carrying session output
// and status events, so external observers (a web client, a transcript
// recorder) can follow a game without touching the engine.
package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

const defaultStartTimeout = 10 * time.Second

type NatsServer struct {
	ns   *server.Server
	conn *nats.Conn

	startupTimeout time.Duration
	host           string
	port           int
}

func NewNatsServer(opts ...NatsServerOpt) (*NatsServer, error) {
	s := &NatsServer{
		startupTimeout: defaultStartTimeout,
		host:           "127.0.0.1",
	}
	for _, opt := range opts {
		opt(s)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   s.host,
		Port:   s.port,
		NoSigs: true, // signals belong to the application
	})
	if err != nil {
		return nil, fmt.Errorf("configuring nats server: %w", err)
	}
	s.ns = ns
	return s, nil
}

// Start runs the server until the context is cancelled. An in-process client
// connection backs Publish and Subscribe.
func (n *NatsServer) Start(ctx context.Context) error {
	n.ns.Start()
	defer n.ns.WaitForShutdown()
	defer n.ns.Shutdown()

	if !n.ns.ReadyForConnections(n.startupTimeout) {
		return fmt.Errorf("nats server not ready after %s", n.startupTimeout)
	}

	conn, err := nats.Connect(n.ns.ClientURL())
	if err != nil {
		return fmt.Errorf("connecting internal nats client: %w", err)
	}
	n.conn = conn
	defer conn.Close()

	slog.InfoContext(ctx, "nats server listening", "addr", n.ns.Addr())

	<-ctx.Done()
	return nil
}

// Publish sends a message to the given subject.
func (n *NatsServer) Publish(subject string, data []byte) error {
	if n.conn == nil {
		return fmt.Errorf("nats server not started")
	}
	return n.conn.Publish(subject, data)
}

// Subscribe registers a handler for a subject and returns an unsubscribe
// function.
func (n *NatsServer) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	if n.conn == nil {
		return nil, fmt.Errorf("nats server not started")
	}
	sub, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribing to %q: %w", subject, err)
	}
	return func() { sub.Unsubscribe() }, nil
}

package messaging

import "time"

type NatsServerOpt func(*NatsServer)

// WithStartTimeout sets how long Start waits for the server to accept
// connections.
func WithStartTimeout(d time.Duration) NatsServerOpt {
	return func(s *NatsServer) {
		s.startupTimeout = d
	}
}

// WithHost sets the listen host.
func WithHost(host string) NatsServerOpt {
	return func(s *NatsServer) {
		s.host = host
	}
}

// WithPort sets the listen port. Zero picks an ephemeral port.
func WithPort(port int) NatsServerOpt {
	return func(s *NatsServer) {
		s.port = port
	}
}

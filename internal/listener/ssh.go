package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

// SshListener serves the game over ssh. Authentication is wide open; the
// transport is used for its ubiquity, not its security.
type SshListener struct {
	port uint16
	cm   *ConnectionManager
	conf *ssh.ServerConfig
}

func NewSshListener(port uint16, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	conf := &ssh.ServerConfig{NoClientAuth: true}
	conf.AddHostKey(hostKey)
	return &SshListener{port: port, cm: cm, conf: conf}
}

func (l *SshListener) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", l.port, err)
	}
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	slog.InfoContext(ctx, "listening for ssh", "port", l.port)

	var sessions sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				sessions.Wait()
				return nil
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		sessions.Add(1)
		go func() {
			defer sessions.Done()
			if err := l.serve(ctx, conn); err != nil {
				slog.WarnContext(ctx, "ssh connection", "remote", conn.RemoteAddr(), "error", err)
			}
		}()
	}
}

// serve runs the ssh handshake and plays one game per session channel.
func (l *SshListener) serve(ctx context.Context, conn net.Conn) error {
	defer conn.Close()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, l.conf)
	if err != nil {
		return fmt.Errorf("handshake: %w", err)
	}
	defer sshConn.Close()
	go ssh.DiscardRequests(reqs)

	// Closing the connection on cancel unblocks the channel loop below.
	go func() {
		<-ctx.Done()
		sshConn.Close()
	}()

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}
		ch, requests, err := newChan.Accept()
		if err != nil {
			slog.ErrorContext(ctx, "accepting ssh channel", "error", err)
			continue
		}
		l.playChannel(ctx, ch, requests)
	}
	return nil
}

// playChannel waits for the client's shell request, then runs the game over
// the channel. Pty requests are refused so the client keeps local echo and
// line buffering.
func (l *SshListener) playChannel(ctx context.Context, ch ssh.Channel, requests <-chan *ssh.Request) {
	defer ch.Close()

	shell := make(chan struct{})
	go func() {
		for req := range requests {
			switch req.Type {
			case "shell":
				req.Reply(true, nil)
				close(shell)
			default:
				req.Reply(false, nil)
			}
		}
	}()

	// Clients won't forward input until the shell request is answered.
	select {
	case <-shell:
	case <-ctx.Done():
		return
	}

	l.cm.AcceptConnection(ctx, newCRLFReadWriter(ch))
}

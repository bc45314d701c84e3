package messaging

import (
	"encoding/json"
	"fmt"
)

// SessionPublisher mirrors session activity onto NATS subjects:
// session.<id>.output carries the rendered text the player saw, and
// session.<id>.status carries a JSON progress snapshot after each command.
type SessionPublisher struct {
	server *NatsServer
}

// SessionStatus is the payload published on the status subject.
type SessionStatus struct {
	Scene        string   `json:"scene"`
	Score        int      `json:"score"`
	MaxScore     int      `json:"max_score"`
	Turns        int      `json:"turns"`
	Exits        []string `json:"exits,omitempty"`
	KnownObjects []string `json:"known_objects,omitempty"`
}

func NewSessionPublisher(server *NatsServer) *SessionPublisher {
	return &SessionPublisher{server: server}
}

// Output publishes the text shown to the player.
func (p *SessionPublisher) Output(sessionId, text string) error {
	return p.server.Publish(fmt.Sprintf("session.%s.output", sessionId), []byte(text))
}

// Status publishes a progress snapshot.
func (p *SessionPublisher) Status(sessionId string, status SessionStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("marshaling session status: %w", err)
	}
	return p.server.Publish(fmt.Sprintf("session.%s.status", sessionId), data)
}

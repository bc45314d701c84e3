package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	AutosaveInterval string           `json:"autosave_interval"`
	Listeners        []ListenerConfig `json:"listeners"`
	World            WorldConfig      `json:"world"`
	Saves            SavesConfig      `json:"saves"`
	Nats             NatsConfig       `json:"nats"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.AutosaveInterval != "" {
		d, err := time.ParseDuration(c.AutosaveInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing autosave_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("autosave_interval must be at least 1 second"))
		}
	}

	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.World.validate())
	el.Add(c.Saves.validate())
	el.Add(c.Nats.validate())

	return el.Err()
}

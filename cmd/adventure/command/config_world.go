package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/world"
)

type WorldConfig struct {
	ScenesPath string `json:"scenes_path"`
	StartScene string `json:"start_scene"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.ScenesPath == "" {
		el.Add(fmt.Errorf("scenes_path is required"))
	} else if _, err := os.Stat(c.ScenesPath); err != nil {
		el.Add(fmt.Errorf("invalid scenes_path %q: %w", c.ScenesPath, err))
	}

	if c.StartScene == "" {
		el.Add(fmt.Errorf("start_scene is required"))
	}

	return el.Err()
}

func (c *WorldConfig) BuildWorld() (*world.World, error) {
	scenes, err := storage.NewFileStore[*world.Scene](c.ScenesPath)
	if err != nil {
		return nil, fmt.Errorf("loading scenes: %w", err)
	}

	w, err := world.NewWorld(scenes, c.StartScene)
	if err != nil {
		return nil, fmt.Errorf("resolving world: %w", err)
	}
	return w, nil
}

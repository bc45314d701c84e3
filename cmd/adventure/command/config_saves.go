package command

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-adventure/internal/storage"
)

type SaveStoreType int

const (
	SaveStoreTypeFile SaveStoreType = iota
	SaveStoreTypeRedis
)

func (st *SaveStoreType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "file":
		*st = SaveStoreTypeFile
	case "redis":
		*st = SaveStoreTypeRedis
	default:
		return fmt.Errorf("unknown save store type: %s", text)
	}
	return nil
}

type SavesConfig struct {
	Type SaveStoreType `json:"type"`
	Path string        `json:"path,omitempty"`
	Addr string        `json:"addr,omitempty"`
}

func (c *SavesConfig) validate() error {
	el := errors.NewErrorList()

	switch c.Type {
	case SaveStoreTypeFile:
		if c.Path == "" {
			el.Add(fmt.Errorf("path is required for file saves"))
		}
	case SaveStoreTypeRedis:
		if c.Addr == "" {
			el.Add(fmt.Errorf("addr is required for redis saves"))
		}
	}

	return el.Err()
}

func (c *SavesConfig) BuildSaveStore() (storage.SaveStore, error) {
	switch c.Type {
	case SaveStoreTypeFile:
		return storage.NewFileSaveStore(c.Path)
	case SaveStoreTypeRedis:
		return storage.NewRedisSaveStore(c.Addr), nil
	default:
		return nil, fmt.Errorf("unknown save store type: %v", c.Type)
	}
}

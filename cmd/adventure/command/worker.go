package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-service"

	"github.com/pixil98/go-adventure/internal/driver"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/session"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	w, err := cfg.World.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	saves, err := cfg.Saves.BuildSaveStore()
	if err != nil {
		return nil, fmt.Errorf("building save store: %w", err)
	}

	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("building nats server: %w", err)
	}
	publisher := messaging.NewSessionPublisher(natsServer)

	sessionManager := session.NewSessionManager(w, saves, publisher)
	connManager := listener.NewConnectionManager(sessionManager)

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(connManager)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	var driverOpts []driver.GameDriverOpt
	if cfg.AutosaveInterval != "" {
		d, err := time.ParseDuration(cfg.AutosaveInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing autosave_interval: %w", err)
		}
		driverOpts = append(driverOpts, driver.WithTickLength(d))
	}

	return service.WorkerList{
		"nats":      natsServer,
		"sessions":  sessionManager,
		"driver":    driver.NewGameDriver([]driver.Manager{sessionManager}, driverOpts...),
		"listeners": &listeners,
	}, nil
}

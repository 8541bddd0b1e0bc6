package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/voltradar/voltradar/pkg/api"
	"github.com/voltradar/voltradar/pkg/config"
	"github.com/voltradar/voltradar/pkg/db"
	"github.com/voltradar/voltradar/pkg/lifecycle"
	"github.com/voltradar/voltradar/pkg/logger"
	"github.com/voltradar/voltradar/pkg/monitor"
	"github.com/voltradar/voltradar/pkg/mqtt"
)

// cmd/monitor/main.go

func main() {
	configPath := flag.String("config", "/etc/voltradar/monitor.json", "Path to config file")
	flag.Parse()

	var cfg config.MonitorConfig
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	if err := logger.Init(cfg.Logging); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	var recorder monitor.Recorder

	if cfg.DBPath != "" {
		database, err := db.New(cfg.DBPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("Failed to open database")
		}

		defer func() {
			if err := database.Close(); err != nil {
				logger.Error().Err(err).Msg("Failed to close database")
			}
		}()

		recorder = database
	}

	retention := time.Duration(cfg.History.Retention)
	if alertRetention := time.Duration(cfg.Alerts.Retention); alertRetention > retention {
		retention = alertRetention
	}

	svc := monitor.NewService(monitor.Options{
		MaxHistoryEntries: cfg.History.MaxEntries,
		MaxAlerts:         cfg.Alerts.MaxAlerts,
		Retention:         retention,
		CleanupInterval:   time.Duration(cfg.CleanupInterval),
		Recorder:          recorder,
	})

	subscriber := mqtt.NewSubscriber(svc)

	broker, err := mqtt.NewClient(cfg.MQTT, subscriber.Handle)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create mqtt client")
	}

	apiServer := api.NewServer(svc)

	err = lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ServiceName: "voltradar-monitor",
		Services: []lifecycle.Service{
			svc,
			broker,
			&httpService{server: apiServer, addr: cfg.ListenAddr},
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Monitor terminated with error")
	}
}

// httpService adapts the API server's blocking Start(addr) to the
// lifecycle contract.
type httpService struct {
	server *api.Server
	addr   string
}

func (h *httpService) Start(_ context.Context) error {
	if err := h.server.Start(h.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (h *httpService) Stop(ctx context.Context) error {
	return h.server.Stop(ctx)
}

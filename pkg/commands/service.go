package commands

import (
	"os"

	"github.com/charmbracelet/log"

	"tableflip.dev/listplan/pkg/app"
	"tableflip.dev/listplan/pkg/logging"
	"tableflip.dev/listplan/pkg/store"
)

// env is what every command needs: the storage, its gateway and the service
// on top. Close releases the storage.
type env struct {
	Storage store.Storage
	Service *app.Service
	Log     *log.Logger
}

func (e *env) Close() {
	if err := store.Close(e.Storage); err != nil {
		e.Log.Warn("closing storage", "err", err)
	}
}

func loadEnv() (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	level, format := cfg.LogLevel(), cfg.LogFormat()
	if lo.Level != "" {
		level = lo.Level
	}
	if lo.Format != "" {
		format = lo.Format
	}
	logger, err := logging.New(os.Stderr, logging.Options{Level: level, Format: format, Prefix: "listplan"})
	if err != nil {
		return nil, err
	}
	s, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", "path", cfg.BasePath(), "backend", cfg.Backend())
	g := store.NewGateway(s, logger)
	return &env{Storage: s, Service: app.New(g, logger), Log: logger}, nil
}

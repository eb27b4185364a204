package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/stoker/internal/config"
	"github.com/five82/stoker/internal/httpapi"
	"github.com/five82/stoker/internal/logging"
	"github.com/five82/stoker/internal/prefs"
	"github.com/five82/stoker/internal/state"
	"github.com/five82/stoker/internal/stokercloud"
	"github.com/five82/stoker/internal/ui"
)

// Options carry CLI overrides on top of the config file. Empty values keep
// what the file (or its defaults) says.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/stoker/prefs.toml
	PollEvery  int    // seconds; zero uses config
	User       string
	Password   string
	LogLevel   string
	Listen     string

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o Options) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

// LoadConfig reads the config file, applies overrides from opts and validates the result.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.User); v != "" {
		cfg.User = v
	}
	if opts.Password != "" {
		cfg.Password = opts.Password
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(opts.Listen); v != "" {
		cfg.Listen = v
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newClient(cfg config.Config, logger zerolog.Logger) (*stokercloud.Client, error) {
	clientOpts := cfg.ClientOptions()
	clientOpts.Logger = logger
	client, err := stokercloud.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("init stokercloud client: %w", err)
	}
	return client, nil
}

// Run starts the poller and the terminal dashboard. Logs go to the configured
// log file so they never interleave with the dashboard.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.LogPath())
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Output: logFile})
	if err != nil {
		return err
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("using default preferences")
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	store := &state.Store{}
	pollLog := logging.Component(logger, "poller")
	StartPoller(ctx, store, client, cfg.PollInterval(), pollLog)

	uiOpts := ui.Options{
		Context: ctx,
		Store:   store,
		Refresh: func(ctx context.Context) error {
			return RefreshNow(ctx, store, client, pollLog)
		},
		PollTick:  time.Second,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath(),
		Logger:    logging.Component(logger, "ui"),
	}
	return ui.Run(uiOpts)
}

// Serve runs the poller and the HTTP endpoint until ctx is cancelled.
func Serve(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Output: opts.stderr()})
	if err != nil {
		return err
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	store := &state.Store{}
	pollLog := logging.Component(logger, "poller")
	StartPoller(ctx, store, client, cfg.PollInterval(), pollLog)

	refresh := func(ctx context.Context) error {
		return RefreshNow(ctx, store, client, pollLog)
	}
	handler := httpapi.NewHandler(store, refresh, logging.Component(logger, "http"))
	server := httpapi.NewServer(cfg.Listen, handler.InitRoutes())

	logger.Info().Str("listen", cfg.Listen).Str("user", cfg.User).Msg("serving boiler status")
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

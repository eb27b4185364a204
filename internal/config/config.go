package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/stoker/internal/stokercloud"
)

// Config holds the settings stoker reads from its TOML file.
type Config struct {
	User           string
	Password       string
	BaseURL        string
	CacheSeconds   int // zero disables the status cache
	TimeoutSeconds int
	PollSeconds    int
	LogLevel       string
	LogFile        string
	Listen         string
}

const (
	defaultConfigPath     = "~/.config/stoker/config.toml"
	defaultBaseURL        = "http://www.stokercloud.dk/"
	defaultCacheSeconds   = 10
	defaultTimeoutSeconds = 10
	defaultPollSeconds    = 15
	defaultLogLevel       = "info"
	defaultLogFile        = "~/.local/state/stoker/stoker.log"
	defaultListen         = "127.0.0.1:8089"
)

// ErrUserRequired is returned by Validate when no account is configured.
var ErrUserRequired = errors.New("stokercloud user is required (set user in config, --user or STOKERCLOUD_USER)")

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:        defaultBaseURL,
		CacheSeconds:   defaultCacheSeconds,
		TimeoutSeconds: defaultTimeoutSeconds,
		PollSeconds:    defaultPollSeconds,
		LogLevel:       defaultLogLevel,
		LogFile:        mustExpand(defaultLogFile),
		Listen:         defaultListen,
	}
}

// Load locates and parses the stoker config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		User           string `toml:"user"`
		Password       string `toml:"password"`
		BaseURL        string `toml:"base_url"`
		CacheSeconds   *int   `toml:"cache_seconds"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		PollSeconds    int    `toml:"poll_seconds"`
		LogLevel       string `toml:"log_level"`
		LogFile        string `toml:"log_file"`
		Listen         string `toml:"listen"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		User:           strings.TrimSpace(raw.User),
		Password:       raw.Password,
		BaseURL:        orDefault(raw.BaseURL, defaultBaseURL),
		CacheSeconds:   cacheSecondsOr(raw.CacheSeconds, defaultCacheSeconds),
		TimeoutSeconds: positiveOr(raw.TimeoutSeconds, defaultTimeoutSeconds),
		PollSeconds:    positiveOr(raw.PollSeconds, defaultPollSeconds),
		LogLevel:       strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel)),
		LogFile:        mustExpand(orDefault(raw.LogFile, defaultLogFile)),
		Listen:         orDefault(raw.Listen, defaultListen),
	}
	return cfg, nil
}

// Validate reports settings that prevent talking to the service.
func (c Config) Validate() error {
	if strings.TrimSpace(c.User) == "" {
		return ErrUserRequired
	}
	return nil
}

// PollInterval returns the dashboard/poller tick.
func (c Config) PollInterval() time.Duration {
	return time.Duration(positiveOr(c.PollSeconds, defaultPollSeconds)) * time.Second
}

// ClientOptions maps the config onto stokercloud client options.
func (c Config) ClientOptions() stokercloud.ClientOptions {
	cacheSeconds := c.CacheSeconds
	if cacheSeconds < 0 {
		cacheSeconds = defaultCacheSeconds
	}
	return stokercloud.ClientOptions{
		User:      strings.TrimSpace(c.User),
		Password:  c.Password,
		BaseURL:   c.BaseURL,
		CacheTime: stokercloud.CacheFor(time.Duration(cacheSeconds) * time.Second),
		Timeout:   time.Duration(positiveOr(c.TimeoutSeconds, defaultTimeoutSeconds)) * time.Second,
	}
}

// LogPath returns the log file location, expanding the default when unset.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return mustExpand(defaultLogFile)
	}
	return mustExpand(c.LogFile)
}

func orDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

// cacheSecondsOr keeps an explicit zero, which disables the status cache.
func cacheSecondsOr(value *int, fallback int) int {
	if value == nil || *value < 0 {
		return fallback
	}
	return *value
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

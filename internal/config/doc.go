// Package config loads stoker's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/stoker/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, empty or non-positive, use defaults
//
// cache_seconds is the exception: an explicit 0 is kept and disables the
// status cache, so every poll reaches the service.
//
// # TOML Format
//
//	user            = "my-boiler"
//	password        = ""
//	base_url        = "http://www.stokercloud.dk/"
//	cache_seconds   = 10
//	timeout_seconds = 10
//	poll_seconds    = 15
//	log_level       = "info"
//	log_file        = "~/.local/state/stoker/stoker.log"
//	listen          = "127.0.0.1:8089"
//
// Every field is optional for Load; Validate requires user before any network
// command runs. The CLI layers flags and STOKERCLOUD_* environment variables
// on top of the loaded values.
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory and relative paths are made
// absolute. Expansion applies to the config path and log_file.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return err
//	}
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
//	client, err := stokercloud.NewClient(cfg.ClientOptions())
package config

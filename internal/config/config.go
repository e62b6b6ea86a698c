// Package config loads runtime configuration from flags, environment
// variables (PADKEYS_ prefix) and an optional config file, in that
// precedence order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	// Addr is the diagnostics HTTP listen address.
	Addr string
	// Backend selects the input backend: auto, sdl or fallback.
	Backend string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// PollInterval overrides the device sampling cadence.
	PollInterval time.Duration
}

// Load parses args (without the program name) and merges them with
// environment variables and the optional config file.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("padkeys", pflag.ContinueOnError)
	fs.String("addr", ":8080", "diagnostics listen address")
	fs.String("backend", "auto", "input backend: auto, sdl or fallback")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.Duration("poll-interval", 16*time.Millisecond, "device sampling interval")
	configFile := fs.String("config", "", "optional config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("PADKEYS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Addr:         v.GetString("addr"),
		Backend:      v.GetString("backend"),
		LogLevel:     v.GetString("log-level"),
		PollInterval: v.GetDuration("poll-interval"),
	}
	switch cfg.Backend {
	case "auto", "sdl", "fallback":
	default:
		return nil, fmt.Errorf("unknown backend %q (want auto, sdl or fallback)", cfg.Backend)
	}
	return cfg, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/compose/backspace"
	"github.com/iw2rmb/compose/composition"
)

// Config holds the replay settings read from a TOML file.
type Config struct {
	// Triggers are the decorator trigger characters, e.g. ["@", "#"].
	Triggers []string `toml:"triggers"`

	// ResolveDelayMs is the composition resolve delay in milliseconds.
	ResolveDelayMs int `toml:"resolve_delay_ms"`

	// Strict makes malformed surface mutations abort the replay with exit
	// code 1 instead of being skipped.
	Strict bool `toml:"strict"`

	// HistoryLimit bounds the undo stack.
	HistoryLimit int `toml:"history_limit"`

	// Width is the render width in terminal cells.
	Width int `toml:"width"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Triggers:       []string{"@", "#"},
		ResolveDelayMs: int(composition.DefaultResolveDelay / time.Millisecond),
		HistoryLimit:   1000,
		Width:          80,
	}
}

// loadConfig reads path over DefaultConfig. An empty path returns the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("decode TOML: unknown key %q", undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := backspace.ParseTriggers(c.Triggers...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ResolveDelayMs < 0 {
		return errors.New("config: resolve_delay_ms must not be negative")
	}
	if c.Width < 0 {
		return errors.New("config: width must not be negative")
	}
	return nil
}

func (c Config) resolveDelay() time.Duration {
	if c.ResolveDelayMs == 0 {
		// A zero delay in the file means "resolve on the next turn".
		return -1
	}
	return time.Duration(c.ResolveDelayMs) * time.Millisecond
}

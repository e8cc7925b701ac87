package cli

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/mangara/graphcore/orient"
)

// Config holds settings shared by all commands. Flags given on the command
// line take precedence over values from the config file.
type Config struct {
	Seed       int64        `toml:"seed"`
	Radius     float64      `toml:"radius"`
	Degeneracy int          `toml:"degeneracy"`
	LogLevel   string       `toml:"log_level"`
	Layout     LayoutConfig `toml:"layout"`
}

// LayoutConfig controls drawing export.
type LayoutConfig struct {
	Scale  float64 `toml:"scale"`
	Labels bool    `toml:"labels"`
}

// defaultConfig mirrors the library defaults.
func defaultConfig() Config {
	return Config{
		Seed:       42,
		Radius:     100,
		Degeneracy: orient.DefaultDegeneracy,
		LogLevel:   "info",
		Layout:     LayoutConfig{Scale: 1},
	}
}

// loadConfig returns the defaults overlaid with the TOML file at path.
// An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Radius <= 0 {
		return Config{}, fmt.Errorf("load config %s: radius must be positive, got %v", path, cfg.Radius)
	}
	if cfg.Degeneracy < 0 {
		return Config{}, fmt.Errorf("load config %s: degeneracy cannot be negative, got %d", path, cfg.Degeneracy)
	}
	return cfg, nil
}

// level resolves the configured log level; verbose forces debug.
func (c Config) level(verbose bool) (log.Level, error) {
	if verbose {
		return log.DebugLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func withConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext retrieves the config from ctx, or the defaults.
func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey).(Config); ok {
		return c
	}
	return defaultConfig()
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pelletier/go-toml"
)

// Config holds the settings of a btcheck run. Values are read from an
// optional TOML file and overridden by command-line flags:
//
//	degree      = 3
//	mode        = "insert"   # or "rebuild"
//	format      = "console"  # or "html", "dot"
//	color       = "auto"     # or "always", "never"
//	compression = "snappy"   # for -encode: "none", "snappy", "lz4"
//	trace       = "error"    # or "info", "debug"
type Config struct {
	Degree      int    `toml:"degree"`
	Mode        string `toml:"mode"`
	Format      string `toml:"format"`
	Color       string `toml:"color"`
	Compression string `toml:"compression"`
	Trace       string `toml:"trace"`
}

func defaultConfig() Config {
	return Config{
		Degree:      2,
		Mode:        "insert",
		Format:      "console",
		Color:       "auto",
		Compression: "none",
		Trace:       "error",
	}
}

// loadConfig reads a TOML config file on top of the defaults. Keys missing
// from the file keep their default values.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, cfg.check()
}

// merge overwrites cfg with every non-zero field of other.
func (cfg *Config) merge(other Config) {
	if other.Degree != 0 {
		cfg.Degree = other.Degree
	}
	setString(&cfg.Mode, other.Mode)
	setString(&cfg.Format, other.Format)
	setString(&cfg.Color, other.Color)
	setString(&cfg.Compression, other.Compression)
	setString(&cfg.Trace, other.Trace)
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func (cfg Config) check() error {
	switch cfg.Mode {
	case "insert", "rebuild":
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	switch cfg.Format {
	case "console", "html", "dot":
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color setting %q", cfg.Color)
	}
	if _, err := traceLevel(cfg.Trace); err != nil {
		return err
	}
	return nil
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

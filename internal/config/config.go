// Package config loads port-patrol configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (PORT_PATROL_*)
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .port-patrol.yaml in current directory
//  2. ~/.config/port-patrol/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/timvw/port-patrol/internal/serialio"
)

// Config holds all port-patrol configuration.
type Config struct {
	// Serial defaults applied to new sessions
	Port        string `yaml:"port"`
	BaudRate    int    `yaml:"baud_rate"`
	DataBits    int    `yaml:"data_bits"`
	Parity      string `yaml:"parity"`       // "none" (default), "even", "odd"
	StopBits    int    `yaml:"stop_bits"`
	FlowControl string `yaml:"flow_control"` // "none" (default), "hardware", "software"

	// UI
	Layout   string `yaml:"layout"`    // Initial layout: "single", "horizontal", "vertical", "2x2", "1x2", "2x1"
	Refresh  string `yaml:"refresh"`   // UI tick interval, Go duration string, e.g. "100ms"
	LogLimit int    `yaml:"log_limit"` // Retained log lines per session

	// Backend selects how ports are opened: "auto" (default), "device", "loopback"
	Backend string `yaml:"backend"`

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs, e.g. "Authorization=Basic abc123"

	// Parsed refresh interval (not from YAML, set after loading)
	RefreshDuration time.Duration `yaml:"-"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		BaudRate:    9600,
		DataBits:    8,
		Parity:      "none",
		StopBits:    1,
		FlowControl: "none",
		Layout:      "single",
		Refresh:     "100ms",
		LogLimit:    10000,
		Backend:     "auto",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
func Load() (*Config, error) {
	cfg := Defaults()

	// Try to load config file
	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	// Environment variables override everything
	if err := mergeEnv(cfg); err != nil {
		return nil, err
	}

	var err error
	cfg.RefreshDuration, err = parseInterval(cfg.Refresh, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh interval %q: %w", cfg.Refresh, err)
	}

	return cfg, nil
}

// SerialSettings converts the config's serial fields into an openable
// settings value. The port may still be empty; callers pick one later.
func (c *Config) SerialSettings() (serialio.Settings, error) {
	parity, err := serialio.ParseParity(c.Parity)
	if err != nil {
		return serialio.Settings{}, fmt.Errorf("invalid parity: %w", err)
	}
	flow, err := serialio.ParseFlowControl(c.FlowControl)
	if err != nil {
		return serialio.Settings{}, fmt.Errorf("invalid flow control: %w", err)
	}
	return serialio.Settings{
		Port:        c.Port,
		BaudRate:    c.BaudRate,
		DataBits:    c.DataBits,
		Parity:      parity,
		StopBits:    c.StopBits,
		FlowControl: flow,
	}, nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	// 1. Current directory
	if data, err := os.ReadFile(".port-patrol.yaml"); err == nil {
		return ".port-patrol.yaml", data, nil
	}

	// 2. XDG config dir / ~/.config
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "port-patrol", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.Port != "" {
		cfg.Port = file.Port
	}
	if file.BaudRate > 0 {
		cfg.BaudRate = file.BaudRate
	}
	if file.DataBits > 0 {
		cfg.DataBits = file.DataBits
	}
	if file.Parity != "" {
		cfg.Parity = file.Parity
	}
	if file.StopBits > 0 {
		cfg.StopBits = file.StopBits
	}
	if file.FlowControl != "" {
		cfg.FlowControl = file.FlowControl
	}
	if file.Layout != "" {
		cfg.Layout = file.Layout
	}
	if file.Refresh != "" {
		cfg.Refresh = file.Refresh
	}
	if file.LogLimit > 0 {
		cfg.LogLimit = file.LogLimit
	}
	if file.Backend != "" {
		cfg.Backend = file.Backend
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) error {
	if v := os.Getenv("PORT_PATROL_PORT"); v != "" {
		cfg.Port = v
	}
	if err := envInt("PORT_PATROL_BAUD", &cfg.BaudRate); err != nil {
		return err
	}
	if err := envInt("PORT_PATROL_DATA_BITS", &cfg.DataBits); err != nil {
		return err
	}
	if v := os.Getenv("PORT_PATROL_PARITY"); v != "" {
		cfg.Parity = v
	}
	if err := envInt("PORT_PATROL_STOP_BITS", &cfg.StopBits); err != nil {
		return err
	}
	if v := os.Getenv("PORT_PATROL_FLOW_CONTROL"); v != "" {
		cfg.FlowControl = v
	}
	if v := os.Getenv("PORT_PATROL_LAYOUT"); v != "" {
		cfg.Layout = v
	}
	if v := os.Getenv("PORT_PATROL_REFRESH"); v != "" {
		cfg.Refresh = v
	}
	if err := envInt("PORT_PATROL_LOG_LIMIT", &cfg.LogLimit); err != nil {
		return err
	}
	if v := os.Getenv("PORT_PATROL_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
	return nil
}

// envInt parses an integer environment variable into dst when set.
func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

// parseInterval parses a duration string. Empty returns the fallback;
// non-positive durations are rejected because the tick drives the UI.
func parseInterval(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive")
	}
	return d, nil
}

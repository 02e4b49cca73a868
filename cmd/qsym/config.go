package main

import (
	"fmt"
	"os"

	"github.com/naoina/toml"
)

// Config is the optional TOML run configuration. Flags override file
// values.
type Config struct {
	Run struct {
		Regime  string
		Pattern string
		Qubits  int
	}
	Log struct {
		Level string
		File  string
	}
}

// defaultConfig returns the built-in run settings.
func defaultConfig() Config {
	var cfg Config
	cfg.Run.Regime = "float"
	cfg.Run.Pattern = "hexagon"
	cfg.Run.Qubits = 6
	cfg.Log.Level = "info"
	return cfg
}

// loadConfig reads a TOML file over the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

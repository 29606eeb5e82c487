package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Neumenon/benc/benc"
)

// defaultConfigPath is consulted when no --config flag is given; a
// missing file there is not an error.
const defaultConfigPath = ".benc.toml"

type fileConfig struct {
	MaxDepth int    `toml:"max_depth"`
	Output   string `toml:"output"`
}

type cliConfig struct {
	MaxDepth int
	Compact  bool
}

func defaultCLIConfig() cliConfig {
	return cliConfig{MaxDepth: benc.DefaultMaxDepth}
}

// loadCLIConfig reads defaults from a TOML file. When path is empty the
// default location is tried and silently skipped if absent; an explicit
// path must exist.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cliConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("max_depth") {
		if raw.MaxDepth <= 0 {
			return cliConfig{}, fmt.Errorf("load config: max_depth must be positive, got %d", raw.MaxDepth)
		}
		cfg.MaxDepth = raw.MaxDepth
	}

	if meta.IsDefined("output") {
		switch strings.TrimSpace(raw.Output) {
		case "compact":
			cfg.Compact = true
		case "pretty", "":
			cfg.Compact = false
		default:
			return cliConfig{}, fmt.Errorf("load config: unknown output mode %q", raw.Output)
		}
	}

	return cfg, nil
}

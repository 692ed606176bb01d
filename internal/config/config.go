package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// FormatCSV and FormatSQLite are the supported artifact formats.
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"

	// DefaultOutputName is the artifact name Bloom's import docs use.
	DefaultOutputName = "bloom-data-ah.csv"
)

type Config struct {
	HealthExport string `toml:"health_export"`
	OutputDir    string `toml:"output_dir"`
	OutputName   string `toml:"output_name"`
	Format       string `toml:"format"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HealthExport: filepath.Join(home, "Downloads", "export.xml"),
		OutputDir:    home,
		OutputName:   DefaultOutputName,
		Format:       FormatCSV,
	}

	cfgPath := filepath.Join(home, ".config", "bloomport", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	if cfg.Format != FormatCSV && cfg.Format != FormatSQLite {
		return nil, fmt.Errorf("config format %q: want %q or %q", cfg.Format, FormatCSV, FormatSQLite)
	}

	// expand ~ in paths
	cfg.HealthExport = expandHome(cfg.HealthExport, home)
	cfg.OutputDir = expandHome(cfg.OutputDir, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}

package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Storage StorageConfig `yaml:"storage"`
	Report  ReportConfig  `yaml:"report"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

type CatalogConfig struct {
	DefaultFile string `yaml:"default_file"` // offered when the load/save prompt is left empty
	Delimiter   string `yaml:"delimiter"`    // single character, "," by default
}

type StorageConfig struct {
	SnapshotPath string `yaml:"snapshot_path"` // SQLite snapshot used by the export/import commands
}

type ReportConfig struct {
	Path string `yaml:"path"`
}

type DisplayConfig struct {
	MaxRows  int `yaml:"max_rows"`  // 0 prints every row
	BarWidth int `yaml:"bar_width"` // widest bar of the terminal charts
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML config at configPath over the defaults. With an
// empty path it tries configs/books.yaml and books.yaml and falls back to
// the defaults when neither exists.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Catalog: CatalogConfig{
			DefaultFile: "books.csv",
			Delimiter:   ",",
		},
		Storage: StorageConfig{
			SnapshotPath: "books.db",
		},
		Report: ReportConfig{
			Path: "books_report.xlsx",
		},
		Display: DisplayConfig{
			MaxRows:  0,
			BarWidth: 40,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}

	if configPath == "" {
		for _, p := range []string{"configs/books.yaml", "books.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				return cfg, applyDefaults(cfg)
			}
		}
		return cfg, applyDefaults(cfg)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	return cfg, applyDefaults(cfg)
}

// Comma returns the configured delimiter as a rune.
func (c *Config) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Catalog.Delimiter)
	return r
}

func applyDefaults(cfg *Config) error {
	if cfg.Catalog.DefaultFile == "" {
		cfg.Catalog.DefaultFile = "books.csv"
	}
	if cfg.Catalog.Delimiter == "" {
		cfg.Catalog.Delimiter = ","
	}
	if utf8.RuneCountInString(cfg.Catalog.Delimiter) != 1 {
		return fmt.Errorf("config: catalog.delimiter must be a single character, got %q", cfg.Catalog.Delimiter)
	}
	switch cfg.Comma() {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("config: catalog.delimiter %q is not allowed", cfg.Catalog.Delimiter)
	}
	if cfg.Storage.SnapshotPath == "" {
		cfg.Storage.SnapshotPath = "books.db"
	}
	if cfg.Report.Path == "" {
		cfg.Report.Path = "books_report.xlsx"
	}
	if cfg.Display.MaxRows < 0 {
		cfg.Display.MaxRows = 0
	}
	if cfg.Display.BarWidth <= 0 {
		cfg.Display.BarWidth = 40
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	return nil
}

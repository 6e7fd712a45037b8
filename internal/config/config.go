package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the workspace directory.
const FileName = "dashfolio.yaml"

// Config represents the top-level dashfolio.yaml configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store"`
	Autoload   AutoloadConfig   `yaml:"autoload"`
	Projection ProjectionConfig `yaml:"projection"`
	Display    DisplayConfig    `yaml:"display"`
	Log        LogConfig        `yaml:"log"`
}

// StoreConfig locates the dataset cache.
type StoreConfig struct {
	Dir string `yaml:"dir"` // relative to the workspace directory
}

// AutoloadConfig names the sources used when the cache holds no portfolio
// or watchlist. Each source is a file path or an http(s) URL.
type AutoloadConfig struct {
	Portfolio string `yaml:"portfolio,omitempty"`
	Watchlist string `yaml:"watchlist,omitempty"`
}

// ProjectionConfig holds the default simulation inputs.
type ProjectionConfig struct {
	MonthlyContribution string `yaml:"monthly_contribution"`
	AnnualReturnPercent string `yaml:"annual_return_percent"`
	ReinvestDividends   bool   `yaml:"reinvest_dividends"`
}

// DisplayConfig bounds the length of ranked views.
type DisplayConfig struct {
	TopHoldings   int `yaml:"top_holdings"`
	TopDividends  int `yaml:"top_dividends"`
	WatchlistRows int `yaml:"watchlist_rows"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a dashfolio.yaml file from disk. Fields left out of the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Dir: ".dashfolio",
		},
		Autoload: AutoloadConfig{
			Portfolio: "./data/Portfolio_Plan_12_Months_Extended.csv",
			Watchlist: "./data/Watchlist_Complementary_Companies.csv",
		},
		Projection: ProjectionConfig{
			MonthlyContribution: "0",
			AnnualReturnPercent: "0",
			ReinvestDividends:   true,
		},
		Display: DisplayConfig{
			TopHoldings:   10,
			TopDividends:  10,
			WatchlistRows: 40,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/mathbench/internal/chart"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path checked when the default file is absent.
	legacyConfigPath = "config.json"
	// DefaultTitle is the page heading used when the config omits one.
	DefaultTitle = "Math Benchmark Comparison"

	defaultOutputHTML = "dist/dashboard.html"
	defaultOutputXLSX = "dist/benchmark_report.xlsx"
	defaultLogFile    = "mathbench.log"
)

// Config represents the top-level application configuration.
type Config struct {
	OutputHTML string `json:"outputHTML,omitempty"`
	OutputXLSX string `json:"outputXLSX,omitempty"`
	LogFile    string `json:"logFile,omitempty"`
	Debug      bool   `json:"debug"`
	Title      string `json:"title,omitempty"`
	Theme      Theme  `json:"theme"`
	ConfigPath string `json:"-"`
}

// Theme overrides parts of the shared chart presentation defaults.
type Theme struct {
	FontFamily        string `json:"fontFamily,omitempty"`
	AnimationMs       int    `json:"animationMs,omitempty"`
	LegendColor       string `json:"legendColor,omitempty"`
	TooltipBackground string `json:"tooltipBackground,omitempty"`
}

// HTMLPath returns where the dashboard page is written.
func (c Config) HTMLPath() string {
	if p := strings.TrimSpace(c.OutputHTML); p != "" {
		return p
	}
	return defaultOutputHTML
}

// XLSXPath returns where the spreadsheet report is written.
func (c Config) XLSXPath() string {
	if p := strings.TrimSpace(c.OutputXLSX); p != "" {
		return p
	}
	return defaultOutputXLSX
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// PageTitle returns the dashboard heading.
func (c Config) PageTitle() string {
	if t := strings.TrimSpace(c.Title); t != "" {
		return t
	}
	return DefaultTitle
}

// ChartTheme converts the theme section into chart presentation overrides.
func (c Config) ChartTheme() chart.Theme {
	return chart.Theme{
		FontFamily:        strings.TrimSpace(c.Theme.FontFamily),
		LegendColor:       strings.TrimSpace(c.Theme.LegendColor),
		TooltipBackground: strings.TrimSpace(c.Theme.TooltipBackground),
		AnimationMs:       c.Theme.AnimationMs,
	}
}

// Validate rejects settings no command can honor.
func (c Config) Validate() error {
	if c.Theme.AnimationMs < 0 {
		return fmt.Errorf("theme.animationMs must not be negative, got %d", c.Theme.AnimationMs)
	}
	if c.OutputHTML != "" && c.OutputHTML == c.OutputXLSX {
		return errors.New("outputHTML and outputXLSX must not name the same file")
	}
	return nil
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

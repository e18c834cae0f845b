package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/accelplot/internal/logging"
)

const (
	DefaultFile         = "MSR457988x_250314_163216.csv"
	DefaultWindowTitle  = "Accelerometer Data Processor"
	DefaultWindowWidth  = 600
	DefaultWindowHeight = 400
	DefaultChartWidth   = 8.0
	DefaultChartHeight  = 6.0
	DefaultTermWidth    = 80
	DefaultTermHeight   = 15
)

type Config struct {
	File            string         `yaml:"file"`
	KeepInvalidTime bool           `yaml:"keep_invalid_time"`
	Window          WindowConfig   `yaml:"window"`
	Export          ExportConfig   `yaml:"export"`
	Terminal        TerminalConfig `yaml:"terminal"`
	Log             logging.Config `yaml:"log"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ExportConfig sizes charts written with --out, in inches.
type ExportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type TerminalConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		File: DefaultFile,
		Window: WindowConfig{
			Title:  DefaultWindowTitle,
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Export: ExportConfig{
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
		},
		Terminal: TerminalConfig{
			Width:  DefaultTermWidth,
			Height: DefaultTermHeight,
		},
		Log: logging.DefaultConfig(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("file must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("export size must be positive, got %gx%g", c.Export.Width, c.Export.Height)
	}
	if c.Terminal.Width <= 0 || c.Terminal.Height <= 0 {
		return fmt.Errorf("terminal size must be positive, got %dx%d", c.Terminal.Width, c.Terminal.Height)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Overrides holds command-line values. A nil field was not given and
// leaves the configured value alone.
type Overrides struct {
	File            *string
	KeepInvalidTime *bool
	LogLevel        *string
	LogFile         *string
	// Args are positional arguments; the first one names the data file
	// and wins over File.
	Args []string
}

// Resolve loads the config at path (defaults when path is empty) and
// applies o on top of it.
func Resolve(path string, o Overrides) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if o.File != nil {
		cfg.File = *o.File
	}
	if len(o.Args) > 0 {
		cfg.File = o.Args[0]
	}
	if o.KeepInvalidTime != nil {
		cfg.KeepInvalidTime = *o.KeepInvalidTime
	}
	if o.LogLevel != nil {
		cfg.Log.Level = *o.LogLevel
	}
	if o.LogFile != nil {
		cfg.Log.File = *o.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

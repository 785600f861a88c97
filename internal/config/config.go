package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leengari/edakit/internal/charts"
	"github.com/leengari/edakit/internal/convert"
	"github.com/leengari/edakit/internal/transform"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = "edakit.yaml"

// Config holds all edakit configuration
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	SeqURL   string `yaml:"seq_url"`   // optional Seq server, e.g. http://localhost:5341

	Plot      PlotConfig      `yaml:"plot"`
	Transform TransformConfig `yaml:"transform"`
	Check     CheckConfig     `yaml:"check"`
}

// PlotConfig configures chart rendering
type PlotConfig struct {
	OutDir        string  `yaml:"out_dir"`
	Format        string  `yaml:"format"`
	WidthIn       float64 `yaml:"width_in"`
	HeightIn      float64 `yaml:"height_in"`
	TopN          int     `yaml:"top_n"`
	MaxCategories int     `yaml:"max_categories"`
	GroupOther    bool    `yaml:"group_other"`
}

// TransformConfig configures column coercion
type TransformConfig struct {
	Truthy     string `yaml:"truthy"`
	DateLayout string `yaml:"date_layout"`
}

// CheckConfig configures the consistency check
type CheckConfig struct {
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	plot := charts.DefaultOptions()
	return &Config{
		LogLevel: "info",
		Plot: PlotConfig{
			OutDir:        plot.OutDir,
			Format:        plot.Format,
			WidthIn:       plot.WidthIn,
			HeightIn:      plot.HeightIn,
			TopN:          plot.TopN,
			MaxCategories: plot.MaxCategories,
		},
		Transform: TransformConfig{
			Truthy:     transform.DefaultTruthy,
			DateLayout: convert.DefaultDateLayout,
		},
	}
}

// Load reads configuration from a YAML file over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a YAML file
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects values no helper can work with
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Plot.WidthIn <= 0 || c.Plot.HeightIn <= 0 {
		return fmt.Errorf("plot size must be positive, got %vx%v", c.Plot.WidthIn, c.Plot.HeightIn)
	}
	if c.Plot.TopN < 1 {
		return fmt.Errorf("plot.top_n must be at least 1, got %d", c.Plot.TopN)
	}
	if c.Plot.MaxCategories < 1 {
		return fmt.Errorf("plot.max_categories must be at least 1, got %d", c.Plot.MaxCategories)
	}
	return nil
}

// PlotOptions converts the plot section into chart options
func (c *Config) PlotOptions(logger *slog.Logger) charts.Options {
	return charts.Options{
		OutDir:        c.Plot.OutDir,
		Format:        c.Plot.Format,
		WidthIn:       c.Plot.WidthIn,
		HeightIn:      c.Plot.HeightIn,
		TopN:          c.Plot.TopN,
		MaxCategories: c.Plot.MaxCategories,
		GroupOther:    c.Plot.GroupOther,
		Logger:        logger,
	}
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

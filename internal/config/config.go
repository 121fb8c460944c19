package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xxxsen/common/logger"
	"gopkg.in/yaml.v3"
)

const (
	defaultWidth   = 960
	defaultHeight  = 460
	defaultPadding = 20
	defaultScale   = 175.295
)

// Config is the root runtime configuration.
type Config struct {
	Canvas     CanvasConfig     `json:"canvas" yaml:"canvas"`
	Geometry   SourceConfig     `json:"geometry" yaml:"geometry"`
	Statistics SourceConfig     `json:"statistics" yaml:"statistics"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	Log        logger.LogConfig `json:"log" yaml:"log"`
	Cache      CacheConfig      `json:"cache" yaml:"cache"`
	Pprof      PprofConfig      `json:"pprof" yaml:"pprof"`
}

type CanvasConfig struct {
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Padding float64 `json:"padding" yaml:"padding"`
	Scale   float64 `json:"scale" yaml:"scale"`
}

// SourceConfig points at a dataset. Link is a URL whose scheme selects the source
// implementation, e.g. file://data/drinks.json or https://example.org/countries.geojson.
type SourceConfig struct {
	Link    string `json:"link" yaml:"link"`
	NameKey string `json:"name_key" yaml:"name_key"`
}

type OutputConfig struct {
	SVG      string  `json:"svg" yaml:"svg"`
	PNG      string  `json:"png" yaml:"png"`
	PNGScale float64 `json:"png_scale" yaml:"png_scale"`
}

type CacheConfig struct {
	Size int `json:"size" yaml:"size"`
}

type PprofConfig struct {
	Enable bool   `json:"enable" yaml:"enable"`
	Bind   string `json:"bind" yaml:"bind"`
}

// Default returns a configuration matching the stock 960x460 world map.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:   defaultWidth,
			Height:  defaultHeight,
			Padding: defaultPadding,
			Scale:   defaultScale,
		},
		Geometry: SourceConfig{
			NameKey: "name",
		},
		Output: OutputConfig{
			PNGScale: 1,
		},
		Log: logger.LogConfig{
			Level:   "info",
			Console: true,
		},
		Cache: CacheConfig{
			Size: 256,
		},
	}
}

// Load reads the configuration file from disk. An empty path yields the defaults,
// which may still be completed by environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var envOverrides = map[string]func(c *Config, v string){
	"DRINKMAP_GEOMETRY":   func(c *Config, v string) { c.Geometry.Link = v },
	"DRINKMAP_STATISTICS": func(c *Config, v string) { c.Statistics.Link = v },
	"DRINKMAP_SVG":        func(c *Config, v string) { c.Output.SVG = v },
	"DRINKMAP_PNG":        func(c *Config, v string) { c.Output.PNG = v },
	"DRINKMAP_LOG_LEVEL":  func(c *Config, v string) { c.Log.Level = v },
}

func applyEnv(cfg *Config) error {
	// a missing .env is the normal case
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	for key, set := range envOverrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			set(cfg, v)
		}
	}
	return nil
}

// Validate checks the fields the pipeline cannot run without.
func (c *Config) Validate() error {
	if c.Geometry.Link == "" {
		return fmt.Errorf("config: geometry link is required")
	}
	if c.Statistics.Link == "" {
		return fmt.Errorf("config: statistics link is required")
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("config: invalid canvas size %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Padding < 0 {
		return fmt.Errorf("config: negative canvas padding %g", c.Canvas.Padding)
	}
	if c.Canvas.Scale <= 0 {
		c.Canvas.Scale = defaultScale
	}
	if c.Geometry.NameKey == "" {
		c.Geometry.NameKey = "name"
	}
	if c.Output.PNGScale <= 0 {
		c.Output.PNGScale = 1
	}
	return nil
}

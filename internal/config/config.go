package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/mix"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/search"
)

// SearchConfig holds the best-mix search tuning.
type SearchConfig struct {
	Depth     int `mapstructure:"depth"`
	BeamWidth int `mapstructure:"beam_width"`
	Workers   int `mapstructure:"workers"`
}

// Config holds all runtime configuration for the mixer.
// Values are populated from .mixer.yaml, MIXER_* env vars, and CLI flags.
// Empty document paths select the embedded documents.
type Config struct {
	IngredientsPath string       `mapstructure:"ingredients_path"`
	EffectsPath     string       `mapstructure:"effects_path"`
	Verbose         bool         `mapstructure:"verbose"`
	Watch           bool         `mapstructure:"watch"`
	Search          SearchConfig `mapstructure:"search"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	def := search.DefaultConfig()
	viper.SetDefault("ingredients_path", "")
	viper.SetDefault("effects_path", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("watch", false)
	viper.SetDefault("search.depth", def.Depth)
	viper.SetDefault("search.beam_width", def.BeamWidth)
	viper.SetDefault("search.workers", def.Workers)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Search.Depth < 1 || c.Search.Depth > mix.MaxIngredients {
		return fmt.Errorf("search.depth must be between 1 and %d, got %d", mix.MaxIngredients, c.Search.Depth)
	}
	if c.Search.BeamWidth < 1 {
		return fmt.Errorf("search.beam_width must be at least 1, got %d", c.Search.BeamWidth)
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("search.workers must not be negative, got %d", c.Search.Workers)
	}
	return nil
}

// SearchTuning converts the search section to the searcher's config.
func (c Config) SearchTuning() search.Config {
	return search.Config{
		Depth:     c.Search.Depth,
		BeamWidth: c.Search.BeamWidth,
		Workers:   c.Search.Workers,
	}
}

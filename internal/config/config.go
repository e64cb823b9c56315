package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/wave/internal/palette"
	"github.com/san-kum/wave/internal/render"
)

const (
	DefaultSpeed   = 1.0
	DefaultFPS     = 60
	DefaultWaves   = 5
	DefaultPalette = "rainbow"

	MinFPS   = 1
	MaxFPS   = 240
	MinWaves = 1
	MaxWaves = 50
)

type Config struct {
	Speed   float64 `yaml:"speed"`
	FPS     int     `yaml:"fps"`
	Palette string  `yaml:"palette"`
	Glyph   string  `yaml:"glyph,omitempty"`
	Waves   int     `yaml:"waves"`
}

func DefaultConfig() *Config {
	return &Config{
		Speed:   DefaultSpeed,
		FPS:     DefaultFPS,
		Palette: DefaultPalette,
		Waves:   DefaultWaves,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration against the supported ranges. The
// glyph override may be any UTF-8 string that fits a serialized cell
// and does not span more than two terminal columns.
func (c *Config) Validate() error {
	if !(c.Speed > 0) || math.IsInf(c.Speed, 0) {
		return fmt.Errorf("%w, got %v", ErrSpeed, c.Speed)
	}
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("%w [%d, %d], got %d", ErrFPS, MinFPS, MaxFPS, c.FPS)
	}
	if c.Waves < MinWaves || c.Waves > MaxWaves {
		return fmt.Errorf("%w [%d, %d], got %d", ErrWaves, MinWaves, MaxWaves, c.Waves)
	}
	if len(c.Glyph) > render.MaxGlyphBytes {
		return fmt.Errorf("%w: %d bytes, max %d", ErrGlyph, len(c.Glyph), render.MaxGlyphBytes)
	}
	if runewidth.StringWidth(c.Glyph) > 2 {
		return fmt.Errorf("%w: %q spans more than 2 columns", ErrGlyph, c.Glyph)
	}
	if _, err := palette.Lookup(c.Palette); err != nil {
		return err
	}
	return nil
}

// FrameDelay converts the frame rate into the per-frame sleep. The
// division truncates: 60 fps sleeps 16666 microseconds.
func (c *Config) FrameDelay() time.Duration {
	return time.Duration(1_000_000/c.FPS) * time.Microsecond
}

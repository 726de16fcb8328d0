// Package config defines the validated run configuration for texture
// generation. Configs load from YAML, merge with CLI flags in the
// caller, and are range-checked once before any field is computed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/texgen/internal/field"
)

const (
	DefaultWidth       = 512
	DefaultHeight      = 512
	DefaultScale       = 8.0
	DefaultOctaves     = 4
	DefaultPersistence = 0.5
	DefaultPoints      = 20
	DefaultSigma       = 2.0
	DefaultBlurMin     = 0.015
	DefaultBlurMax     = 0.04
)

type Config struct {
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Seed        int64         `yaml:"seed"`
	Supersample int           `yaml:"supersample"`
	Output      string        `yaml:"output"`
	Format      string        `yaml:"format"`
	Unique      bool          `yaml:"unique"`
	Perlin      PerlinConfig  `yaml:"perlin"`
	Voronoi     VoronoiConfig `yaml:"voronoi"`
	Blend       BlendConfig   `yaml:"blend"`
	Blur        BlurConfig    `yaml:"blur"`
}

type PerlinConfig struct {
	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
}

type VoronoiConfig struct {
	Points int    `yaml:"points"`
	Metric string `yaml:"metric"`
}

type BlendConfig struct {
	Mode string `yaml:"mode"`
	// Weight blends perlin against voronoi in weighted mode; -1 draws
	// a weight at random per run.
	Weight    float64 `yaml:"weight"`
	Threshold float64 `yaml:"threshold"`
}

type BlurConfig struct {
	Sigma float64 `yaml:"sigma"`
	// Dynamic ignores Sigma and draws one from [MinFrac,MaxFrac] of the
	// smaller image dimension per run.
	Dynamic bool    `yaml:"dynamic"`
	MinFrac float64 `yaml:"min_frac"`
	MaxFrac float64 `yaml:"max_frac"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Supersample: 1,
		Output:      "texture.png",
		Format:      "png",
		Perlin: PerlinConfig{
			Scale:       DefaultScale,
			Octaves:     DefaultOctaves,
			Persistence: DefaultPersistence,
		},
		Voronoi: VoronoiConfig{
			Points: DefaultPoints,
			Metric: "euclidean",
		},
		Blend: BlendConfig{
			Mode:      "weighted",
			Weight:    -1,
			Threshold: 0.5,
		},
		Blur: BlurConfig{
			Sigma:   DefaultSigma,
			MinFrac: DefaultBlurMin,
			MaxFrac: DefaultBlurMax,
		},
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

// Validate range-checks every parameter. It runs once, before any field
// computation starts.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", field.ErrInvalidDimensions, c.Width, c.Height)
	}
	switch c.Supersample {
	case 1, 2, 4:
	default:
		return fmt.Errorf("%w: supersample %d (must be 1, 2, or 4)", field.ErrParameterBounds, c.Supersample)
	}
	switch c.Format {
	case "png", "bmp", "tiff":
	default:
		return fmt.Errorf("%w: unknown format %q", field.ErrParameterBounds, c.Format)
	}
	if c.Perlin.Scale <= 0 {
		return fmt.Errorf("%w: perlin scale %g", field.ErrParameterBounds, c.Perlin.Scale)
	}
	if c.Perlin.Octaves < 1 {
		return fmt.Errorf("%w: perlin octaves %d", field.ErrParameterBounds, c.Perlin.Octaves)
	}
	if c.Perlin.Persistence <= 0 || c.Perlin.Persistence > 1 {
		return fmt.Errorf("%w: perlin persistence %g", field.ErrParameterBounds, c.Perlin.Persistence)
	}
	if c.Voronoi.Points < 1 {
		return fmt.Errorf("%w: voronoi points %d", field.ErrParameterBounds, c.Voronoi.Points)
	}
	switch c.Voronoi.Metric {
	case "euclidean", "manhattan", "chebyshev":
	default:
		return fmt.Errorf("%w: voronoi metric %q", field.ErrParameterBounds, c.Voronoi.Metric)
	}
	switch c.Blend.Mode {
	case "weighted", "multiply", "threshold":
	default:
		return fmt.Errorf("%w: blend mode %q", field.ErrParameterBounds, c.Blend.Mode)
	}
	if c.Blend.Weight != -1 && (c.Blend.Weight < 0 || c.Blend.Weight > 1) {
		return fmt.Errorf("%w: blend weight %g (must be in [0,1] or -1 for random)", field.ErrParameterBounds, c.Blend.Weight)
	}
	if c.Blend.Threshold < 0 || c.Blend.Threshold > 1 {
		return fmt.Errorf("%w: blend threshold %g", field.ErrParameterBounds, c.Blend.Threshold)
	}
	if c.Blur.Sigma < 0 {
		return fmt.Errorf("%w: blur sigma %g (must be >= 0)", field.ErrParameterBounds, c.Blur.Sigma)
	}
	if c.Blur.Dynamic {
		if c.Blur.MinFrac < 0 || c.Blur.MaxFrac < c.Blur.MinFrac {
			return fmt.Errorf("%w: blur fraction range [%g,%g]", field.ErrParameterBounds, c.Blur.MinFrac, c.Blur.MaxFrac)
		}
	}
	return nil
}

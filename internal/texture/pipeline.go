// Package texture orchestrates the generation pipeline: perlin and
// voronoi fields are synthesized over the same grid, blended, mapped
// through a randomized palette, blurred, and returned as an RGBA buffer
// ready for export.
//
// Every stage consumes the fully materialized output of the previous
// stage; nothing is computed lazily or in parallel. All randomness comes
// from a single seeded source drawn in a fixed order (perlin permutation,
// voronoi seeds, blend weight, palette, blur sigma), so a given seed and
// config always reproduce the same image bytes.
package texture

import (
	"image"
	"math/rand"
	"time"

	"golang.org/x/image/draw"

	"github.com/san-kum/texgen/internal/blur"
	"github.com/san-kum/texgen/internal/compose"
	"github.com/san-kum/texgen/internal/config"
	"github.com/san-kum/texgen/internal/field"
	"github.com/san-kum/texgen/internal/noise"
	"github.com/san-kum/texgen/internal/palette"
)

// Result carries the finished image plus the randomized choices made
// during the run, so callers can report and reproduce them.
type Result struct {
	Image   *image.RGBA
	Seed    int64
	Sigma   float64
	Weight  float64
	Palette palette.Palette
}

// Run executes the full pipeline for cfg. A zero seed is replaced by
// the current time; the seed actually used is returned in the Result.
func Run(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	blended, weight, err := blendedField(cfg, rng)
	if err != nil {
		return nil, err
	}

	pal := palette.Random(rng)
	img := render(blended, pal)

	if cfg.Supersample > 1 {
		img = downscale(img, cfg.Width, cfg.Height)
	}

	sigma := cfg.Blur.Sigma
	if cfg.Blur.Dynamic {
		sigma = blur.DynamicSigma(rng, cfg.Width, cfg.Height, cfg.Blur.MinFrac, cfg.Blur.MaxFrac)
	}
	img = blur.Gaussian(img, sigma)

	return &Result{
		Image:   img,
		Seed:    seed,
		Sigma:   sigma,
		Weight:  weight,
		Palette: pal,
	}, nil
}

// BlendedField runs the pipeline up to the compositor and returns the
// normalized scalar field, for inspection without rendering an image.
func BlendedField(cfg *config.Config) (*field.Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f, _, err := blendedField(cfg, rand.New(rand.NewSource(seed)))
	return f, err
}

func blendedField(cfg *config.Config, rng *rand.Rand) (*field.Field, float64, error) {
	w := cfg.Width * cfg.Supersample
	h := cfg.Height * cfg.Supersample

	perlin := &noise.Perlin{
		Scale:       cfg.Perlin.Scale,
		Octaves:     cfg.Perlin.Octaves,
		Persistence: cfg.Perlin.Persistence,
	}
	pf, err := perlin.Generate(w, h, rng)
	if err != nil {
		return nil, 0, err
	}

	voronoi := &noise.Voronoi{
		Points: cfg.Voronoi.Points,
		Metric: noise.Metric(cfg.Voronoi.Metric),
	}
	vf, err := voronoi.Generate(w, h, rng)
	if err != nil {
		return nil, 0, err
	}

	weight := cfg.Blend.Weight
	if cfg.Blend.Mode == "weighted" && weight < 0 {
		weight = rng.Float64()
	}

	blended, err := compose.Blend(pf, vf, compose.Mode(cfg.Blend.Mode), weight, cfg.Blend.Threshold)
	if err != nil {
		return nil, 0, err
	}
	return blended, weight, nil
}

func render(f *field.Field, pal palette.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			img.SetRGBA(x, y, pal.Map(f.At(x, y)))
		}
	}
	return img
}

func downscale(img *image.RGBA, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/texgen/internal/field"
)

// Metric selects the distance function for Voronoi noise.
type Metric string

const (
	Euclidean Metric = "euclidean"
	Manhattan Metric = "manhattan"
	Chebyshev Metric = "chebyshev"
)

// Voronoi generates nearest-seed-point distance noise. Points seeds are
// placed uniformly inside the grid bounds.
type Voronoi struct {
	Points int
	Metric Metric
}

// NewVoronoi returns a Euclidean-distance source with n seed points.
func NewVoronoi(n int) *Voronoi {
	return &Voronoi{Points: n, Metric: Euclidean}
}

func (v *Voronoi) Name() string { return "voronoi" }

func (v *Voronoi) validate() error {
	if v.Points < 1 {
		return fmt.Errorf("%w: voronoi points %d (must be >= 1)", field.ErrParameterBounds, v.Points)
	}
	switch v.Metric {
	case Euclidean, Manhattan, Chebyshev:
		return nil
	default:
		return fmt.Errorf("%w: unknown distance metric %q", field.ErrParameterBounds, v.Metric)
	}
}

type point struct {
	x, y float64
}

// Generate builds the field: each sample is the distance to its nearest
// seed. Ties go to the seed generated first (strict less-than scan).
func (v *Voronoi) Generate(w, h int, rng *rand.Rand) (*field.Field, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	f, err := field.New(w, h)
	if err != nil {
		return nil, err
	}

	seeds := make([]point, v.Points)
	for i := range seeds {
		seeds[i] = point{rng.Float64() * float64(w), rng.Float64() * float64(h)}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, d := nearest(seeds, float64(x), float64(y), v.Metric)
			f.Set(x, y, d)
		}
	}

	f.Normalize()
	return f, nil
}

// nearest returns the index of the closest seed and its distance.
// The first seed at minimal distance wins.
func nearest(seeds []point, x, y float64, m Metric) (int, float64) {
	best, bestD := 0, math.Inf(1)
	for i, s := range seeds {
		d := distance(x-s.x, y-s.y, m)
		if d < bestD {
			best, bestD = i, d
		}
	}
	return best, bestD
}

func distance(dx, dy float64, m Metric) float64 {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch m {
	case Manhattan:
		return ax + ay
	case Chebyshev:
		return math.Max(ax, ay)
	default:
		return math.Hypot(dx, dy)
	}
}

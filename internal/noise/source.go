package noise

import (
	"math/rand"

	"github.com/san-kum/texgen/internal/field"
)

// Source produces a scalar field over a w×h grid. All randomness comes
// from rng so runs are reproducible.
type Source interface {
	Name() string
	Generate(w, h int, rng *rand.Rand) (*field.Field, error)
}

var (
	_ Source = (*Perlin)(nil)
	_ Source = (*Voronoi)(nil)
)

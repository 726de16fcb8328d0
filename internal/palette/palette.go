// Package palette maps normalized scalar values to colors.
//
// A [Palette] is an ordered list of anchor colors spread evenly over
// [0,1]; lookups interpolate between the two surrounding anchors in Lab
// space, which keeps the gradient perceptually smooth. Anchors are drawn
// at random per run from a restricted HSV region so palettes stay
// saturated without clipping.
package palette

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	minAnchors = 2
	maxAnchors = 8
)

// Palette is an ordered gradient of anchor colors over [0,1].
type Palette struct {
	Anchors []colorful.Color
}

// Random draws between 2 and 8 anchor colors from rng.
func Random(rng *rand.Rand) Palette {
	n := minAnchors + rng.Intn(maxAnchors-minAnchors+1)
	anchors := make([]colorful.Color, n)
	for i := range anchors {
		anchors[i] = colorful.Hsv(
			rng.Float64()*360.0,
			0.4+rng.Float64()*0.6,
			0.3+rng.Float64()*0.7,
		)
	}
	return Palette{Anchors: anchors}
}

// FromHex builds a palette from hex strings like "#1a2b3c". Invalid
// strings are skipped; a palette needs at least one valid anchor to be
// usable, otherwise Map returns black.
func FromHex(hexes []string) Palette {
	anchors := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		anchors = append(anchors, c)
	}
	return Palette{Anchors: anchors}
}

// Map returns the 8-bit RGBA color for t. Inputs outside [0,1] clamp.
func (p Palette) Map(t float64) color.RGBA {
	if len(p.Anchors) == 0 {
		return color.RGBA{A: 255}
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	c := p.at(t).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (p Palette) at(t float64) colorful.Color {
	n := len(p.Anchors)
	if n == 1 {
		return p.Anchors[0]
	}

	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return p.Anchors[n-1]
	}
	return p.Anchors[i].BlendLab(p.Anchors[i+1], pos-float64(i))
}

// Hex returns the anchors as "#rrggbb" strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p.Anchors))
	for i, c := range p.Anchors {
		out[i] = c.Clamped().Hex()
	}
	return out
}

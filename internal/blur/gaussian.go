// Package blur applies Gaussian smoothing to RGBA pixel buffers.
//
// The convolution is separable (horizontal pass then vertical pass) with
// a kernel radius of ceil(3σ). Border pixels use clamp edge handling:
// samples outside the buffer repeat the nearest edge pixel. A sigma of
// zero is the identity and returns the input buffer untouched.
package blur

import (
	"image"
	"math"
	"math/rand"
)

// Kernel returns normalized Gaussian weights for sigma, centered at
// index radius (length 2*radius+1). Sigma must be positive.
func Kernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	k := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range k {
		d := float64(i - radius)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Gaussian blurs img with standard deviation sigma and returns a buffer
// of identical dimensions. sigma <= 0 returns img unchanged.
func Gaussian(img *image.RGBA, sigma float64) *image.RGBA {
	if sigma <= 0 {
		return img
	}

	k := Kernel(sigma)
	radius := len(k) / 2
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	horiz := image.NewRGBA(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			convolve(img, horiz, k, radius, x, y, w, h, true)
		}
	}

	out := image.NewRGBA(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			convolve(horiz, out, k, radius, x, y, w, h, false)
		}
	}
	return out
}

func convolve(src, dst *image.RGBA, k []float64, radius, x, y, w, h int, horizontal bool) {
	var r, g, b, a float64
	for i, weight := range k {
		sx, sy := x, y
		if horizontal {
			sx = clamp(x+i-radius, w)
		} else {
			sy = clamp(y+i-radius, h)
		}
		o := src.PixOffset(src.Rect.Min.X+sx, src.Rect.Min.Y+sy)
		r += weight * float64(src.Pix[o])
		g += weight * float64(src.Pix[o+1])
		b += weight * float64(src.Pix[o+2])
		a += weight * float64(src.Pix[o+3])
	}
	o := dst.PixOffset(dst.Rect.Min.X+x, dst.Rect.Min.Y+y)
	dst.Pix[o] = round(r)
	dst.Pix[o+1] = round(g)
	dst.Pix[o+2] = round(b)
	dst.Pix[o+3] = round(a)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func round(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// DynamicSigma draws a per-run sigma uniformly from [lo,hi] scaled by
// the smaller grid dimension, so blur strength tracks image size.
func DynamicSigma(rng *rand.Rand, w, h int, lo, hi float64) float64 {
	min := w
	if h < min {
		min = h
	}
	return (lo + rng.Float64()*(hi-lo)) * float64(min)
}

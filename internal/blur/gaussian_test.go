package blur

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestKernelNormalized(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 2, 5} {
		k := Kernel(sigma)
		sum := 0.0
		for _, v := range k {
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("sigma %g: kernel sums to %f", sigma, sum)
		}
		if len(k)%2 != 1 {
			t.Errorf("sigma %g: kernel length %d not odd", sigma, len(k))
		}
		// symmetry
		for i := range k {
			if math.Abs(k[i]-k[len(k)-1-i]) > 1e-12 {
				t.Errorf("sigma %g: kernel asymmetric at %d", sigma, i)
			}
		}
	}
}

func TestGaussianPreservesDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"square", 16, 16},
		{"wide", 31, 7},
		{"single pixel", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solid(tt.w, tt.h, color.RGBA{100, 150, 200, 255})
			out := Gaussian(img, 2.0)
			if out.Bounds() != img.Bounds() {
				t.Errorf("bounds changed: %v -> %v", img.Bounds(), out.Bounds())
			}
		})
	}
}

func TestGaussianZeroSigmaIdentity(t *testing.T) {
	img := solid(8, 8, color.RGBA{10, 20, 30, 255})
	img.SetRGBA(3, 3, color.RGBA{200, 0, 0, 255})

	out := Gaussian(img, 0)
	if out != img {
		t.Error("sigma=0 should return the input buffer")
	}
}

func TestGaussianUniformImageUnchanged(t *testing.T) {
	img := solid(12, 12, color.RGBA{77, 88, 99, 255})
	out := Gaussian(img, 3.0)
	if !bytes.Equal(out.Pix, img.Pix) {
		t.Error("blurring a uniform image changed pixel values")
	}
}

func TestGaussianSmooths(t *testing.T) {
	img := solid(15, 15, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(7, 7, color.RGBA{255, 255, 255, 255})

	out := Gaussian(img, 1.5)

	center := out.RGBAAt(7, 7)
	if center.R >= 255 {
		t.Error("center pixel not attenuated")
	}
	neighbor := out.RGBAAt(8, 7)
	if neighbor.R == 0 {
		t.Error("energy did not spread to neighbor")
	}
	if out.RGBAAt(7, 7).A != 255 {
		t.Error("alpha not preserved")
	}
}

func TestGaussianEdgeClamp(t *testing.T) {
	// a corner impulse must stay bounded; clamp policy repeats the edge
	img := solid(9, 9, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})

	out := Gaussian(img, 1.0)
	corner := out.RGBAAt(0, 0)
	if corner.R == 0 || corner.R > 255 {
		t.Errorf("corner value %d out of expected range", corner.R)
	}
}

func TestDynamicSigma(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		s := DynamicSigma(rng, 64, 128, 0.015, 0.04)
		if s < 0.015*64 || s > 0.04*64 {
			t.Fatalf("sigma %f outside [%f,%f]", s, 0.015*64, 0.04*64)
		}
	}

	a := DynamicSigma(rand.New(rand.NewSource(1)), 64, 64, 0.015, 0.04)
	b := DynamicSigma(rand.New(rand.NewSource(1)), 64, 64, 0.015, 0.04)
	if a != b {
		t.Error("same seed produced different sigmas")
	}
}

package palette

import (
	"math/rand"
	"testing"
)

func TestRandomAnchorCount(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		p := Random(rand.New(rand.NewSource(seed)))
		if len(p.Anchors) < minAnchors || len(p.Anchors) > maxAnchors {
			t.Errorf("seed %d: %d anchors outside [%d,%d]", seed, len(p.Anchors), minAnchors, maxAnchors)
		}
	}
}

func TestRandomDeterminism(t *testing.T) {
	a := Random(rand.New(rand.NewSource(42)))
	b := Random(rand.New(rand.NewSource(42)))
	if len(a.Anchors) != len(b.Anchors) {
		t.Fatalf("anchor counts differ: %d vs %d", len(a.Anchors), len(b.Anchors))
	}
	for i := range a.Anchors {
		if a.Anchors[i] != b.Anchors[i] {
			t.Errorf("anchor %d differs", i)
		}
	}
}

func TestMapValidForAllInputs(t *testing.T) {
	p := Random(rand.New(rand.NewSource(7)))
	// sweep includes out-of-range inputs; all must clamp to valid colors
	for _, v := range []float64{-1, -0.001, 0, 0.25, 0.5, 0.75, 1, 1.001, 10} {
		c := p.Map(v)
		if c.A != 255 {
			t.Errorf("Map(%f): alpha %d, want 255", v, c.A)
		}
	}
}

func TestMapClamps(t *testing.T) {
	p := FromHex([]string{"#000000", "#ffffff"})
	if p.Map(-5) != p.Map(0) {
		t.Error("negative input did not clamp to 0")
	}
	if p.Map(5) != p.Map(1) {
		t.Error("oversized input did not clamp to 1")
	}
}

func TestMapEndpoints(t *testing.T) {
	p := FromHex([]string{"#000000", "#ffffff"})

	black := p.Map(0)
	if black.R != 0 || black.G != 0 || black.B != 0 {
		t.Errorf("Map(0) = %v, want black", black)
	}
	white := p.Map(1)
	if white.R != 255 || white.G != 255 || white.B != 255 {
		t.Errorf("Map(1) = %v, want white", white)
	}
}

func TestFromHexSkipsInvalid(t *testing.T) {
	p := FromHex([]string{"#ff0000", "not-a-color", "#00ff00"})
	if len(p.Anchors) != 2 {
		t.Errorf("expected 2 anchors, got %d", len(p.Anchors))
	}
}

func TestSingleAnchor(t *testing.T) {
	p := FromHex([]string{"#336699"})
	if p.Map(0) != p.Map(0.5) || p.Map(0.5) != p.Map(1) {
		t.Error("single-anchor palette should be constant")
	}
}

func TestHexRoundTrip(t *testing.T) {
	in := []string{"#112233", "#aabbcc"}
	p := FromHex(in)
	got := p.Hex()
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("anchor %d: got %s, want %s", i, got[i], in[i])
		}
	}
}

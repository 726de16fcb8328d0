package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 60), uint8(y * 80), 128, 255})
		}
	}
	return img
}

func TestWriteFormats(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"png", "bmp", "tiff"} {
		path := filepath.Join(dir, "out."+format)
		if err := Write(path, testImage(), format); err != nil {
			t.Fatalf("write %s: %v", format, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", format, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s: empty file", format)
		}
	}
}

func TestWrittenPNGDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := Write(path, testImage(), "png"); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("expected 4x3, got %v", img.Bounds())
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, testImage(), "gif"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteBadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "no", "such", "dir", "out.png"), testImage(), "png")
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := Encode(&a, testImage(), "png"); err != nil {
		t.Fatal(err)
	}
	if err := Encode(&b, testImage(), "png"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("png encoding not byte-stable for identical buffers")
	}
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "texture.png")

	p1, err := UniquePath(base)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != filepath.Join(dir, "texture_1.png") {
		t.Errorf("got %s", p1)
	}

	if err := os.WriteFile(p1, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	p2, err := UniquePath(base)
	if err != nil {
		t.Fatal(err)
	}
	if p2 != filepath.Join(dir, "texture_2.png") {
		t.Errorf("got %s", p2)
	}
}

package plot_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	. "github.com/nadzhou/motVIZ3/pkg/plot"
)

// TestLine renders a small curve and decodes the png again.
func TestLine(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "curve.png")
	ys := []float32{0, -0.5, -1, -0.2, 0.6, 1, 0.4}
	args := &Args{Title: "test curve", Minima: []int{2}}
	if err := Line(fname, ys, args); err != nil {
		t.Fatal("plotting:", err)
	}
	fp, err := os.Open(fname)
	if err != nil {
		t.Fatal("png not written:", err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal("png does not decode:", err)
	}
	if img.Bounds().Dx() != 720 || img.Bounds().Dy() != 400 {
		t.Fatal("default image size wrong:", img.Bounds())
	}
}

// TestLineFlat: a flat curve must still render, not divide by zero.
func TestLineFlat(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "flat.png")
	if err := Line(fname, []float32{1, 1, 1, 1}, nil); err != nil {
		t.Fatal("flat plotting:", err)
	}
}

func TestLineTooShort(t *testing.T) {
	if err := Line("nowhere.png", []float32{1}, nil); err == nil {
		t.Fatal("one point should provoke an error")
	}
}

package cons_test

import (
	"errors"
	"testing"

	. "github.com/nadzhou/motVIZ3/pkg/cons"
)

// TestNormalize: smallest value must land exactly on -1, largest
// exactly on 1.
func TestNormalize(t *testing.T) {
	xs := []float32{0, 1, 2, 3}
	if err := Normalize(xs); err != nil {
		t.Fatal("normalize:", err)
	}
	want := []float32{-1, -1. / 3, 1. / 3, 1}
	for i := range want {
		if !approxEqual(xs[i], want[i]) {
			t.Fatal("normalize index", i, "got", xs[i], "want", want[i])
		}
	}
	if xs[0] != -1 || xs[3] != 1 {
		t.Fatal("extremes did not map exactly to -1 and 1")
	}
}

// TestNormalizeDegenerate runs the concrete all-uniform scenario:
// three copies of AAAA give a raw score sequence of zeroes and
// normalization must refuse.
func TestNormalizeDegenerate(t *testing.T) {
	m, err := NewMatrix([][]byte{[]byte("AAAA"), []byte("AAAA"), []byte("AAAA")})
	if err != nil {
		t.Fatal("building matrix:", err)
	}
	scores := m.ScoreColumns(MethodProduct)
	err = Normalize(scores)
	var dre *DegenerateRangeError
	if !errors.As(err, &dre) {
		t.Fatal("wanted DegenerateRangeError, got", err)
	}
	if dre.Value != 0 {
		t.Fatal("degenerate value should be 0, got", dre.Value)
	}
	for _, v := range scores {
		if v != 0 { // no partial rescaling, no NaN
			t.Fatal("degenerate input was touched:", scores)
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if err := Normalize(nil); err == nil {
		t.Fatal("normalizing nothing should provoke an error")
	}
}

// TestMovingAverageLen: window n shortens a sequence of length L to
// L-n+1 and reports offset n-1.
func TestMovingAverageLen(t *testing.T) {
	xs := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	for n := 1; n <= len(xs); n++ {
		sm, err := MovingAverage(xs, n)
		if err != nil {
			t.Fatal("window", n, ":", err)
		}
		if len(sm.Scores) != len(xs)-n+1 {
			t.Fatal("window", n, "gave length", len(sm.Scores))
		}
		if sm.Offset != n-1 {
			t.Fatal("window", n, "gave offset", sm.Offset)
		}
		if sm.Column(0) != n-1 {
			t.Fatal("column mapping wrong for window", n)
		}
	}
}

// TestMovingAverageIdentity: n = 1 must reproduce the input.
func TestMovingAverageIdentity(t *testing.T) {
	xs := []float32{3, 1, 4, 1, 5}
	sm, err := MovingAverage(xs, 1)
	if err != nil {
		t.Fatal("window 1:", err)
	}
	for i := range xs {
		if sm.Scores[i] != xs[i] {
			t.Fatal("identity smoothing changed index", i)
		}
	}
}

// TestMovingAverageConstant: a constant sequence is a fixed point.
func TestMovingAverageConstant(t *testing.T) {
	xs := []float32{2.5, 2.5, 2.5, 2.5, 2.5}
	sm, err := MovingAverage(xs, 3)
	if err != nil {
		t.Fatal("window 3:", err)
	}
	for i, v := range sm.Scores {
		if v != 2.5 {
			t.Fatal("constant input changed at", i, "to", v)
		}
	}
}

func TestMovingAverageValues(t *testing.T) {
	sm, err := MovingAverage([]float32{1, 2, 3, 4}, 2)
	if err != nil {
		t.Fatal("window 2:", err)
	}
	want := []float32{1.5, 2.5, 3.5}
	for i := range want {
		if !approxEqual(sm.Scores[i], want[i]) {
			t.Fatal("index", i, "got", sm.Scores[i], "want", want[i])
		}
	}
}

func TestMovingAverageBadWindow(t *testing.T) {
	xs := []float32{1, 2, 3}
	for _, n := range []int{0, -1, 4} {
		if _, err := MovingAverage(xs, n); err == nil {
			t.Fatal("window", n, "should provoke an error")
		}
	}
}

package cons_test

import (
	"testing"

	. "github.com/nadzhou/motVIZ3/pkg/cons"
)

// TestMinima: strict minima only, and only those below the mean.
func TestMinima(t *testing.T) {
	// mean is about 4.23; the dip to 4.8 at index 4 is a strict local
	// minimum but sits above the mean, so it must be discarded.
	xs := []float32{5, 0, 5, 4.9, 4.8, 4.9, 5}
	got := LocalMinima(xs)
	if len(got) != 1 || got[0] != 1 {
		t.Fatal("wanted minima [1], got", got)
	}
}

// TestMinimaEnds: the first and last index can never be minima.
func TestMinimaEnds(t *testing.T) {
	for _, xs := range [][]float32{
		{0, 5, 5, 5, 0}, // ends are the smallest values
		{1, 1, 1},       // plateau, no strict minimum
		{1, 2},          // too short
		nil,
	} {
		for _, i := range LocalMinima(xs) {
			if i == 0 || i == len(xs)-1 {
				t.Fatal("end index reported as minimum:", i)
			}
		}
	}
}

// TestMinimaPlateau: a flat-bottomed dip is not a strict minimum.
func TestMinimaPlateau(t *testing.T) {
	xs := []float32{5, 1, 1, 5, 4}
	if got := LocalMinima(xs); got != nil {
		t.Fatal("plateau reported as minima:", got)
	}
}

// mkScores builds a sequence of the given length filled with fill.
func mkScores(n int, fill float32) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = fill
	}
	return xs
}

// TestMotifScenario is the concrete filter case: given minima at 10,
// 20 and 30 and a threshold of 4, only the minimum at 10 has its whole
// window below threshold.
func TestMotifScenario(t *testing.T) {
	xs := mkScores(32, 5)
	xs[9], xs[10] = 1, 1.5 // both below threshold
	xs[20] = 1             // but xs[19] stays at 5
	xs[30] = 1             // but xs[29] stays at 5
	got := FindMotifs(xs, []int{10, 20, 30}, 4.0, 2)
	if len(got) != 1 {
		t.Fatal("wanted exactly one motif, got", got)
	}
	if got[0].Pos != 10 || got[0].Score != xs[9] {
		t.Fatal("motif wrong:", got[0])
	}
}

// TestMotifGuard: a minimum needs more than four positions before it.
func TestMotifGuard(t *testing.T) {
	xs := mkScores(12, 0) // everything below threshold
	got := FindMotifs(xs, []int{1, 2, 3, 4, 5}, 1.0, 2)
	if len(got) != 1 || got[0].Pos != 5 {
		t.Fatal("wanted only position 5, got", got)
	}
	for _, m := range got {
		if m.Pos-4 <= 0 {
			t.Fatal("guard failed for position", m.Pos)
		}
	}
}

// TestMotifWidth: with width 3 the window covers three values ending
// at the minimum, and the recorded score is the window's first value.
func TestMotifWidth(t *testing.T) {
	xs := mkScores(16, 5)
	xs[8], xs[9], xs[10] = 0.5, 0.25, 0.75
	got := FindMotifs(xs, []int{10}, 4.0, 3)
	if len(got) != 1 || got[0].Score != 0.5 {
		t.Fatal("width 3 window wrong:", got)
	}
	// widen by one: xs[7] is 5, so the window fails
	if got := FindMotifs(xs, []int{10}, 4.0, 4); got != nil {
		t.Fatal("window should have failed, got", got)
	}
}

// TestMotifEmpty: no minima is not an error, just no motifs.
func TestMotifEmpty(t *testing.T) {
	if got := FindMotifs(mkScores(10, 0), nil, 1.0, 2); got != nil {
		t.Fatal("no minima should give no motifs, got", got)
	}
}

// TestMotifDefaultWidth: width 0 falls back to the default.
func TestMotifDefaultWidth(t *testing.T) {
	xs := mkScores(16, 5)
	xs[9], xs[10] = 1, 1
	got := FindMotifs(xs, []int{10}, 4.0, 0)
	if len(got) != 1 || got[0].Pos != 10 {
		t.Fatal("default width wrong:", got)
	}
}

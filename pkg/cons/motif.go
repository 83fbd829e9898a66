// Locating motifs: strict local minima below the mean, then short
// windows around those minima where every value sits below a caller
// supplied threshold.

package cons

// DefaultMotifWidth is the width of the window inspected around each
// minimum. Two matches the behaviour the downstream thresholds were
// tuned against; anything wider is the caller's choice.
const DefaultMotifWidth = 2

// minPrefix is how many positions must precede a minimum before it can
// anchor a motif. It keeps windows from running off the start and
// matches the residue span the viewer script highlights.
const minPrefix = 4

// LocalMinima returns the indices whose value is strictly smaller than
// both neighbours and also strictly below the mean of the whole
// sequence. The first and last index can never qualify. Results come
// back in ascending order; there are no duplicates since minima are
// positionally distinct.
func LocalMinima(xs []float32) []int {
	if len(xs) < 3 {
		return nil
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	mean := float32(sum / float64(len(xs)))

	var minima []int
	for i := 1; i < len(xs)-1; i++ {
		if xs[i] < xs[i-1] && xs[i] < xs[i+1] && xs[i] < mean {
			minima = append(minima, i)
		}
	}
	return minima
}

// Motif is a window of low conservation. Pos is the index of the
// anchoring minimum in the smoothed score sequence and Score is the
// first value of the inspected window. Mapping Pos back to an original
// alignment column is the caller's job, via Smoothed.Column.
type Motif struct {
	Score float32
	Pos   int
}

// FindMotifs inspects, for each minimum i with more than minPrefix
// positions before it, the window of width values ending at i. If
// every value in the window is strictly below threshold, the window
// becomes a motif. width <= 0 means DefaultMotifWidth. An empty minima
// list gives an empty result, not an error.
func FindMotifs(xs []float32, minima []int, threshold float32, width int) []Motif {
	if width <= 0 {
		width = DefaultMotifWidth
	}
	var motifs []Motif
	for _, i := range minima {
		if i-minPrefix <= 0 {
			continue
		}
		lo := i - width + 1
		if lo < 0 || i+1 > len(xs) {
			continue
		}
		window := xs[lo : i+1]
		below := true
		for _, v := range window {
			if v >= threshold {
				below = false
				break
			}
		}
		if below {
			motifs = append(motifs, Motif{Score: window[0], Pos: i})
		}
	}
	return motifs
}

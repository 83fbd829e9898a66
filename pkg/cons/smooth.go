// Post-processing of the raw column scores: linear rescaling into
// [-1, 1] followed by a moving average. The order matters and is fixed
// by the pipeline: normalize first, smooth second.

package cons

import "fmt"

// Normalize rescales the scores in place so the smallest value maps to
// exactly -1 and the largest to exactly 1. If every value is the same
// there is no range to map and it returns DegenerateRangeError rather
// than quietly producing NaN. Whether a flat score sequence should be
// read as "fully conserved" is the caller's decision, not ours.
func Normalize(xs []float32) error {
	if len(xs) == 0 {
		return &EmptyAlignmentError{}
	}
	min, max := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if max == min {
		return &DegenerateRangeError{Value: min}
	}
	span := max - min
	for i, x := range xs {
		xs[i] = 2*(x-min)/span - 1
	}
	return nil
}

// Smoothed is a score sequence after the moving average, together with
// the index shift the averaging introduced. Smoothing with window n
// shortens the sequence by n-1, so smoothed index i corresponds to the
// raw window ending at column i + Offset. Keeping the offset explicit
// is what saves everyone downstream from off-by-n bookkeeping.
type Smoothed struct {
	Scores []float32
	Offset int
}

// Column maps a smoothed index back to the original column index of
// the end of its window.
func (s Smoothed) Column(i int) int { return i + s.Offset }

// MovingAverage replaces each value by the mean of the window of n
// values ending at it. The result has length len(xs)-n+1 and offset
// n-1. With n = 1 it is a copy of the input. A window that is smaller
// than 1 or wider than the data is an error.
func MovingAverage(xs []float32, n int) (Smoothed, error) {
	if n < 1 || n > len(xs) {
		return Smoothed{}, fmt.Errorf(
			"moving average window %d does not fit sequence of length %d",
			n, len(xs))
	}
	out := make([]float32, len(xs)-n+1)
	var sum float64 // running window sum, float64 so nothing drifts
	for i, x := range xs {
		sum += float64(x)
		if i >= n {
			sum -= float64(xs[i-n])
		}
		if i >= n-1 {
			out[i-n+1] = float32(sum / float64(n))
		}
	}
	return Smoothed{Scores: out, Offset: n - 1}, nil
}

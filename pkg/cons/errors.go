// Error types for the scoring pipeline. Each one names the invariant
// that broke, so a caller can print the message or pick the error out
// with errors.As and apply its own policy.

package cons

import "strconv"

// ShapeError says the sequences in an alignment do not all have the
// same length. Seq is the index of the offending row.
type ShapeError struct {
	Seq  int // index of the sequence with the wrong length
	Want int // length of the first sequence
	Got  int
}

func (e *ShapeError) Error() string {
	return "alignment is ragged: sequence " + strconv.Itoa(e.Seq) +
		" has length " + strconv.Itoa(e.Got) +
		", first sequence has length " + strconv.Itoa(e.Want)
}

// EmptyAlignmentError says we were asked to score an alignment with no
// sequences in it.
type EmptyAlignmentError struct{}

func (e *EmptyAlignmentError) Error() string {
	return "alignment has no sequences"
}

// DegenerateRangeError says normalization was attempted on a sequence
// where every value is the same, so the range is zero and the linear
// rescaling would divide by zero. Value is the constant.
type DegenerateRangeError struct {
	Value float32
}

func (e *DegenerateRangeError) Error() string {
	return "cannot normalize: all scores equal " +
		strconv.FormatFloat(float64(e.Value), 'g', -1, 32)
}

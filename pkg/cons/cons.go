// Package cons computes per-column conservation scores over a multiple
// sequence alignment and finds stretches of unusually low conservation.
// The alignment arrives as rows of bytes, one per sequence. Everything
// here is a bounded transform on in-memory slices. No I/O, no shared
// state, and each stage hands a fresh result to the next.
package cons

import (
	"math"

	"github.com/andrew-torda/matrix"
)

// Symbols are bytes. The readers only produce ascii, but sizing the
// tables for the full byte range costs nothing and needs no checks.
const maxSym = 256

// Method selects the per-column scoring formula.
type Method int

const (
	// MethodProduct multiplies the observation probabilities of the
	// distinct symbols in a column into a single P and scores the
	// column as -P*log2(P). This is what earlier versions of the
	// program computed and what existing thresholds are tuned to.
	MethodProduct Method = iota
	// MethodShannon is the textbook entropy, -sum p*log2(p).
	MethodShannon
)

// Matrix is an N x L alignment laid out for column-wise work. It keeps
// the symbols in a byte matrix plus a per-column count of each symbol
// that occurs anywhere in the alignment. It is built once and not
// changed afterwards.
type Matrix struct {
	syms    *matrix.BMatrix2d
	mapping [maxSym]uint8 // mapping['C'] is the count row used for C
	revmap  []uint8       // revmap[2] is the symbol stored in row 2
	counts  *matrix.FMatrix2d
	nseq    int
	ncol    int
}

const badMap = math.MaxUint8 // marks a symbol as not seen

// NewMatrix builds a column matrix from sequence rows. It fails with
// EmptyAlignmentError if there are no rows and ShapeError if the rows
// are not all the same length. The rows are copied, so the matrix does
// not change when the caller's slices do.
func NewMatrix(rowsIn [][]byte) (*Matrix, error) {
	if len(rowsIn) == 0 {
		return nil, &EmptyAlignmentError{}
	}
	m := &Matrix{nseq: len(rowsIn), ncol: len(rowsIn[0])}
	m.syms = matrix.NewBMatrix2d(m.nseq, m.ncol)
	for i, r := range rowsIn {
		if len(r) != m.ncol {
			return nil, &ShapeError{Seq: i, Want: m.ncol, Got: len(r)}
		}
		copy(m.syms.Mat[i], r)
	}
	m.countSyms()
	return m, nil
}

// NSeq returns the number of sequences (rows).
func (m *Matrix) NSeq() int { return m.nseq }

// NCol returns the alignment width (columns).
func (m *Matrix) NCol() int { return m.ncol }

// Counts gives access to the per-column symbol counts. Row order is
// the order of Revmap.
func (m *Matrix) Counts() *matrix.FMatrix2d { return m.counts }

// Revmap returns the symbols in count-row order.
func (m *Matrix) Revmap() []uint8 { return m.revmap }

// countSyms finds which symbols are used, sets up the symbol to row
// mapping and tallies each symbol per column.
// counts.Mat looks like [number_of_symbols][length_of_seq].
// We store counts as float32 since they are divided by the sequence
// count right away and the tiny inaccuracy costs nothing.
func (m *Matrix) countSyms() {
	var symUsed [maxSym]bool
	for _, row := range m.syms.Mat {
		for _, c := range row {
			symUsed[c] = true
		}
	}
	for i := range m.mapping { // Initialise with bad value, to
		m.mapping[i] = badMap //  trap errors later
	}
	var n uint8
	for i := range symUsed {
		if symUsed[i] {
			m.mapping[i] = n
			m.revmap = append(m.revmap, uint8(i))
			n++
		}
	}
	m.counts = matrix.NewFMatrix2d(len(m.revmap), m.ncol)
	for _, row := range m.syms.Mat {
		for i, c := range row {
			m.counts.Mat[m.mapping[c]][i]++
		}
	}
}

// ScoreColumns computes the conservation score for every column and
// returns one value per column, in column order. A column with only
// one symbol scores exactly zero under both methods. The observation
// probability of a symbol is its count divided by the number of
// sequences, never by the number of distinct symbols.
func (m *Matrix) ScoreColumns(meth Method) []float32 {
	scores := make([]float32, m.ncol)
	nrow := len(m.revmap)
	fN := float64(m.nseq)
	for icol := 0; icol < m.ncol; icol++ {
		switch meth {
		case MethodShannon:
			total := 0.0
			for irow := 0; irow < nrow; irow++ {
				c := float64(m.counts.Mat[irow][icol])
				if c == 0 {
					continue
				}
				p := c / fN
				total += p * math.Log2(p)
			}
			scores[icol] = float32(math.Abs(total))
		default: // MethodProduct
			prod := 1.0
			for irow := 0; irow < nrow; irow++ {
				c := float64(m.counts.Mat[irow][icol])
				if c == 0 {
					continue
				}
				prod *= c / fN
			}
			if prod == 1.0 { // uniform column, log2(1) = 0
				scores[icol] = 0
				continue
			}
			scores[icol] = float32(-prod * math.Log2(prod))
		}
	}
	return scores
}

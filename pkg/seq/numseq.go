// Counting records without parsing. For big fasta alignments it is
// worth knowing the number of sequences before reading, so the slice
// of sequences can be allocated once. Mapping the file and counting
// ">" bytes is the fastest way we found.

package seq

import (
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"
)

// NumSeq returns the number of fasta records in a file. It maps the
// file and counts comment characters, so it costs almost nothing.
// A zero length file gives zero and no error, but mmap does not like
// empty files, so that case is checked first.
func NumSeq(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()

	if fi, err := fp.Stat(); err != nil {
		return 0, err
	} else if fi.Size() == 0 {
		return 0, nil
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	return bytes.Count(mm, []byte{cmmtChar}), nil
}

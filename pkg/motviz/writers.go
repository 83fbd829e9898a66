// The two report writers and the warnings that go with them. The score
// table is a csv for plotting with some other program. The viewer
// script is plain text for pymol, run with @script.txt on its command
// line.

package motviz

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// openOut gives a writer for a filename, with "" and "-" meaning
// standard output. The returned close function is a no-op for stdout.
func openOut(fname string) (io.Writer, func() error, error) {
	if fname == "" || fname == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	warnExists(fname)
	fp, err := os.Create(fname)
	if err != nil {
		return nil, nil, err
	}
	return fp, fp.Close, nil
}

// WriteScoreTable writes positions and their conservation values as a
// two column csv. Only positions scoring above 0.50 are kept; the rest
// are too conserved to be worth plotting. Rows come out sorted by
// position.
func WriteScoreTable(fname string, table map[int]float32) error {
	fp, closer, err := openOut(fname)
	if err != nil {
		return fmt.Errorf("score table %v: %w", fname, err)
	}
	defer closer()

	pos := make([]int, 0, len(table))
	for p, v := range table {
		if v > 0.50 {
			pos = append(pos, p)
		}
	}
	sort.Ints(pos)

	fmt.Fprintln(fp, `"position","variation score"`)
	for _, p := range pos {
		if _, err := fmt.Fprintf(fp, "%d,%.2f\n", p, table[p]); err != nil {
			return fmt.Errorf("score table %v: %w", fname, err)
		}
	}
	return nil
}

// motifColors is the palette cycled over the motif selections so each
// one shows up distinctly in the viewer.
var motifColors = []string{
	"red", "orange", "yellow", "green", "cyan", "magenta", "salmon", "purple",
}

// WritePymol writes a command script for pymol. It fetches the named
// structure, makes one selection per motif spanning residues pos to
// pos+4, hides the default display and shows each motif as a coloured
// cartoon. An empty position list still gives a valid script that just
// fetches the structure.
func WritePymol(fname, pdbID string, pos []int) error {
	fp, closer, err := openOut(fname)
	if err != nil {
		return fmt.Errorf("pymol script %v: %w", fname, err)
	}
	defer closer()

	fmt.Fprintf(fp, "fetch %s\n\n", pdbID)
	for _, p := range pos {
		fmt.Fprintf(fp, "create mot%d, resi %d-%d\n", p, p, p+4)
	}
	fmt.Fprint(fp, "\nhide everything\n\n")
	for _, p := range pos {
		fmt.Fprintf(fp, "show cartoon, resi %d-%d\n", p, p+4)
	}
	fmt.Fprintln(fp)
	for i, p := range pos {
		fmt.Fprintf(fp, "color %s, mot%d\n", motifColors[i%len(motifColors)], p)
	}
	return nil
}

// Package motviz wires the conservation pipeline together: read an
// alignment, score its columns, normalize and smooth the scores, find
// under-conserved minima, pull out motif windows and hand everything
// to the writers. All file handling lives here, at the edge. The
// arithmetic lives in pkg/cons.
package motviz

import (
	"errors"
	"fmt"
	"time"

	"github.com/nadzhou/motVIZ3/pkg/cons"
	"github.com/nadzhou/motVIZ3/pkg/plot"
	"github.com/nadzhou/motVIZ3/pkg/seq"
)

// CmdFlag collects everything the command line can set. There are no
// paths or thresholds hiding anywhere else.
type CmdFlag struct {
	Format     string  // alignment format tag, "clustal", "sth", ...
	PdbID      string  // structure named in the viewer script
	Threshold  float32 // motif windows must sit strictly below this
	Window     int     // moving average window
	MotifWidth int     // width of the inspected motif window
	Shannon    bool    // use textbook entropy instead of the product score
	FlatOK     bool    // treat an all-equal score sequence as fully conserved
	Csv        string  // score table path, "" or "-" for stdout
	Script     string  // pymol script path, "" means do not write one
	Plot       string  // png path, "" means do not plot
	Offset     int     // added to residue numbering on output
	Time       bool    // print the run time when done
}

// Result is what a run hands back for anyone who wants the numbers
// rather than the files.
type Result struct {
	Smoothed cons.Smoothed
	Minima   []int
	Motifs   []cons.Motif
}

// Mymain runs the whole pipeline on one alignment file. Each stage
// either succeeds completely or the run stops with an error that names
// the stage; nothing gets half-written before the scoring is done.
func Mymain(flags *CmdFlag, infile string) (*Result, error) {
	if flags.Time {
		startTime := time.Now()
		end := func() { // Wrapping in a closure is helpful. Gives the right time.
			fmt.Println("finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}

	seqgrp, err := seq.Readfile(infile, flags.Format)
	if err != nil {
		return nil, fmt.Errorf("reading sequences: %w", err)
	}
	if err := seqgrp.Upper(); err != nil {
		return nil, fmt.Errorf("reading sequences: %w", err)
	}

	mat, err := cons.NewMatrix(seqgrp.Rows())
	if err != nil {
		return nil, fmt.Errorf("building column matrix: %w", err)
	}

	meth := cons.MethodProduct
	if flags.Shannon {
		meth = cons.MethodShannon
	}
	scores := mat.ScoreColumns(meth)

	if err := cons.Normalize(scores); err != nil {
		var dre *cons.DegenerateRangeError
		if errors.As(err, &dre) && flags.FlatOK {
			for i := range scores { // policy: flat scores mean the whole
				scores[i] = 0 //       alignment is equally conserved
			}
		} else {
			return nil, fmt.Errorf("normalizing scores: %w", err)
		}
	}

	window := flags.Window
	if window == 0 {
		window = 3
	}
	sm, err := cons.MovingAverage(scores, window)
	if err != nil {
		return nil, fmt.Errorf("smoothing scores: %w", err)
	}

	minima := cons.LocalMinima(sm.Scores)
	motifs := cons.FindMotifs(sm.Scores, minima, flags.Threshold, flags.MotifWidth)
	rslt := &Result{Smoothed: sm, Minima: minima, Motifs: motifs}

	table := make(map[int]float32, len(sm.Scores))
	for i, v := range sm.Scores {
		table[sm.Column(i)+1+flags.Offset] = v
	}
	if err := WriteScoreTable(flags.Csv, table); err != nil {
		return rslt, err
	}

	if flags.Script != "" {
		pos := make([]int, len(motifs))
		for i, m := range motifs {
			pos[i] = sm.Column(m.Pos) + 1 + flags.Offset
		}
		if err := WritePymol(flags.Script, flags.PdbID, pos); err != nil {
			return rslt, err
		}
	}

	if flags.Plot != "" {
		args := &plot.Args{Title: infile, Minima: minima}
		if err := plot.Line(flags.Plot, sm.Scores, args); err != nil {
			return rslt, fmt.Errorf("plotting scores: %w", err)
		}
	}
	return rslt, nil
}

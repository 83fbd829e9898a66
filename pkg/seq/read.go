// Readers for the alignment formats we meet in practice. Fasta is what
// the aligners spit out, clustal and stockholm are what the alignment
// databases give you. People type abbreviations, so the format tag goes
// through NormalizeFormat before anything else happens.

package seq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nadzhou/motVIZ3/pkg/white"
)

// Canonical format names. Anything else has to be mapped to one of
// these by NormalizeFormat.
const (
	Fasta     = "fasta"
	Clustal   = "clustal"
	Stockholm = "stockholm"
)

const cmmtChar byte = '>' // introduces comments in fasta format

// NormalizeFormat maps a human-friendly format tag to its canonical
// name. "sth" is what pfam files are called on disk, "aln" is the
// clustal suffix. An unrecognized tag is an error naming the tag.
func NormalizeFormat(tag string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "fasta", "fa", "mfa":
		return Fasta, nil
	case "clustal", "aln", "clu":
		return Clustal, nil
	case "stockholm", "sth", "stk":
		return Stockholm, nil
	}
	return "", fmt.Errorf("unknown alignment format \"%s\"", tag)
}

// Readfile takes a filename and a format tag and reads sequences from
// it. An empty filename or "-" means standard input. It returns a
// SeqGrp and error.
func Readfile(fname, format string) (*SeqGrp, error) {
	var err error
	var fp io.ReadCloser // don't use a file. It could be stdin.

	if format, err = NormalizeFormat(format); err != nil {
		return nil, err
	}
	if fname != "" && fname != "-" {
		if fp, err = os.Open(fname); err != nil {
			return nil, err
		}
		defer fp.Close()
	} else {
		fp = os.Stdin
	}

	seqgrp := new(SeqGrp)
	if fname != "" && fname != "-" && format == Fasta {
		if n, err := NumSeq(fname); err == nil && n > 0 {
			seqgrp.seqs = make([]seq, 0, n)
		}
	}

	switch format {
	case Fasta:
		err = ReadFasta(fp, seqgrp)
	case Clustal:
		err = ReadClustal(fp, seqgrp)
	case Stockholm:
		err = ReadStockholm(fp, seqgrp)
	}
	return seqgrp, err
}

// LoadMap reads an alignment and returns it as a map from sequence
// identifier to aligned sequence string. Callers who care about the
// file order should use Readfile and keep the SeqGrp.
func LoadMap(fname, format string) (map[string]string, error) {
	seqgrp, err := Readfile(fname, format)
	if err != nil {
		return nil, err
	}
	return seqgrp.IDMap(), nil
}

// ReadFasta reads fasta formatted sequences from rdr into seqgrp.
// A record is a ">" comment line followed by sequence lines. White
// space inside sequence lines is thrown away.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp) error {
	scanner := bufio.NewScanner(rdr)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	cur := -1 // index of the sequence being accumulated
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) > 0 && line[0] == cmmtChar {
			if cur >= 0 && len(seqgrp.seqs[cur].seq) == 0 {
				return errors.New("zero length sequence after " + seqgrp.seqs[cur].name)
			}
			name := strings.TrimSpace(string(line[1:]))
			seqgrp.seqs = append(seqgrp.seqs, seq{name: name})
			cur = len(seqgrp.seqs) - 1
			continue
		}
		if cur < 0 { // junk before the first ">" line
			tst := bytes.TrimSpace(line)
			if len(tst) != 0 {
				return errors.New("not fasta format, line starts " +
					trimStr(string(tst), 40))
			}
			continue
		}
		white.Remove(&line)
		seqgrp.seqs[cur].seq = append(seqgrp.seqs[cur].seq, line...)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if cur >= 0 && len(seqgrp.seqs[cur].seq) == 0 {
		return errors.New("zero length sequence after " + seqgrp.seqs[cur].name)
	}
	if seqgrp.NSeq() == 0 {
		return errors.New("no sequences found")
	}
	return nil
}

// consLine says whether a clustal line is one of the conservation
// lines under a block. Those contain nothing but stars, colons, dots
// and blanks.
func consLine(line string) bool {
	return strings.Trim(line, "*:. \t") == ""
}

// ReadClustal reads a clustal format alignment. Blocks of
//
//	name1  ACDEF 5
//	name2  AC-EF 4
//	       ** **
//
// repeat until the file ends. The trailing residue count and the
// conservation lines are ignored. Sequence order is order of first
// appearance.
func ReadClustal(rdr io.Reader, seqgrp *SeqGrp) error {
	scanner := bufio.NewScanner(rdr)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	ndx := make(map[string]int)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first { // "CLUSTAL W ..." or "MUSCLE ..." header
			first = false
			up := strings.ToUpper(line)
			if strings.HasPrefix(up, "CLUSTAL") || strings.HasPrefix(up, "MUSCLE") {
				continue
			}
		}
		if strings.TrimSpace(line) == "" || consLine(line) {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			continue // conservation line with unusual symbols
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return errors.New("clustal line with no sequence, starts " +
				trimStr(line, 40))
		}
		name, part := fields[0], fields[1]
		i, ok := ndx[name]
		if !ok {
			i = len(seqgrp.seqs)
			ndx[name] = i
			seqgrp.seqs = append(seqgrp.seqs, seq{name: name})
		}
		seqgrp.seqs[i].seq = append(seqgrp.seqs[i].seq, part...)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if seqgrp.NSeq() == 0 {
		return errors.New("no sequences found")
	}
	return nil
}

// ReadStockholm reads a stockholm format alignment. "#" lines are
// annotation and are skipped, "//" ends the alignment. Sequences may
// be split over blocks, as in clustal.
func ReadStockholm(rdr io.Reader, seqgrp *SeqGrp) error {
	scanner := bufio.NewScanner(rdr)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	ndx := make(map[string]int)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "//") {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return errors.New("stockholm line not name + sequence, starts " +
				trimStr(line, 40))
		}
		name, part := fields[0], fields[1]
		i, ok := ndx[name]
		if !ok {
			i = len(seqgrp.seqs)
			ndx[name] = i
			seqgrp.seqs = append(seqgrp.seqs, seq{name: name})
		}
		seqgrp.seqs[i].seq = append(seqgrp.seqs[i].seq, part...)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if seqgrp.NSeq() == 0 {
		return errors.New("no sequences found")
	}
	return nil
}

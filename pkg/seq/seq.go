// Package seq reads multiple sequence alignments. Sequences usually
// begin their lives in fasta, clustal or stockholm format. The package
// does not try to validate biology. It reads what is in the file and
// leaves judgements about shape and content to the scoring code.
package seq

import (
	"fmt"
	"strings"
)

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// seq is one named sequence. The name is whatever the file called it,
// a fasta comment or a clustal/stockholm identifier.
type seq struct {
	name string
	seq  []byte
}

// Name returns the identifier of a sequence, without any leading ">".
func (s seq) Name() string { return s.name }

// GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// Len
func (s seq) Len() int { return len(s.seq) }

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (value higher than 127).
func (s *seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d in sequence \"%s\""
	t := s.GetSeq()
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.Name(), 40))
		}
		if 'a' <= c && c <= 'z' {
			t[i] -= diff
		}
	}
	return nil
}

// SeqGrp is a group of sequences in the order they appeared in the
// input file. For an alignment, the order is part of the data, so we
// keep a slice and not a map.
type SeqGrp struct {
	seqs []seq
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// GetLen returns the length of the first sequence.
// If we are reading a multiple sequence alignment, this should be the
// length of all sequences, but nobody has checked that yet.
func (seqgrp *SeqGrp) GetLen() int {
	if len(seqgrp.seqs) == 0 {
		return 0
	}
	return seqgrp.seqs[0].Len()
}

// SeqSlc returns the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the sequences as a slice of byte rows, one row per
// sequence, in file order. This is the form the scoring code wants.
// The rows alias the stored sequences, so do not scribble on them.
func (seqgrp *SeqGrp) Rows() [][]byte {
	rows := make([][]byte, len(seqgrp.seqs))
	for i, s := range seqgrp.seqs {
		rows[i] = s.GetSeq()
	}
	return rows
}

// IDMap returns the group as a map from sequence identifier to the
// aligned sequence string. Duplicated identifiers get a numeric suffix
// so nothing is silently lost.
func (seqgrp *SeqGrp) IDMap() map[string]string {
	m := make(map[string]string, len(seqgrp.seqs))
	for i, s := range seqgrp.seqs {
		name := s.Name()
		if _, ok := m[name]; ok {
			name = fmt.Sprintf("%s_%d", name, i)
		}
		m[name] = string(s.GetSeq())
	}
	return m
}

// FindNdx returns the index of the sequence whose name contains a
// string. Numbering starts from zero. We remove any ">", space or tab
// at the start.
func (seqgrp *SeqGrp) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >\t")
	for i, ss := range seqgrp.seqs {
		if strings.Contains(ss.Name(), s) {
			return i
		}
	}
	return -1
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names. If prefix is
// not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		f := seq{name: fmt.Sprint(base, i), seq: []byte(s)}
		seqgrp.seqs = append(seqgrp.seqs, f)
	}
	return seqgrp
}

package white_test

import (
	"testing"

	. "github.com/nadzhou/motVIZ3/pkg/white"
)

// TestRemove
func TestRemove(t *testing.T) {
	ss := []string{
		"abcdefghijk",
		" a b c d e f g h i j k",
		"a b c de fgh ijk",
		"   abcdefghijk    ",
		"a   b      cdefghijk\n ",
		"a  b  c  d   e    f     ghijk",
		"a bcdefghij   k",
		"abcdefghij\nk",
	}
	for _, s := range ss {
		b := []byte(s)
		Remove(&b)
		if string(b) != "abcdefghijk" {
			t.Fatalf("white remove broke on \"%s\"", b)
		}
	}
}

// TestRemoveEmpty makes sure nothing silly happens on empty input.
func TestRemoveEmpty(t *testing.T) {
	for _, s := range []string{"", " ", "\n\t "} {
		b := []byte(s)
		Remove(&b)
		if len(b) != 0 {
			t.Fatalf("expected empty slice, got \"%s\"", b)
		}
	}
}

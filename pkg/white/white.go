// Package white removes white space from byte slices, in place.
// Sequence lines arrive with line breaks and the odd stray blank, and
// we do not want to pay for an allocation per line to get rid of them.
package white

func isWhite(c byte) bool {
	var asciiSpace = [256]bool{
		'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
	}
	return asciiSpace[c]
}

// Remove acts on a byte slice, in place, and removes all the white
// space. The slice is shortened, the capacity is unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !isWhite(c) {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

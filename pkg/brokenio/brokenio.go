// Package brokenio wraps an io.Reader so read failures can be staged
// on purpose. The alignment readers have to propagate errors from the
// underlying file, and the only way to be sure they do is to hand them
// a reader that breaks at a known point. Typical use, in a test:
//
//	rdr := brokenio.NewReader(strings.NewReader(data), 20)
//	err := seq.ReadFasta(rdr, &seqgrp) // must not be nil
package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what the reader returns once its byte allowance is
// used up.
var ErrBroken = errors.New("staged read failure")

// Reader passes data through until failAfter bytes have been read,
// then fails every call with ErrBroken. A failAfter of zero fails on
// the first read, which is what a truncated or vanished file looks
// like.
type Reader struct {
	rdr       io.Reader
	failAfter int
	nByte     int
}

// NewReader wraps rdr so it fails after failAfter bytes.
func NewReader(rdr io.Reader, failAfter int) *Reader {
	return &Reader{rdr: rdr, failAfter: failAfter}
}

// NBytes says how much data went through before the failure.
func (r *Reader) NBytes() int { return r.nByte }

func (r *Reader) Read(p []byte) (int, error) {
	left := r.failAfter - r.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > left {
		p = p[:left]
	}
	n, err := r.rdr.Read(p)
	r.nByte += n
	return n, err
}

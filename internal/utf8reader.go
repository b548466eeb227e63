package internal

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// readerBufferSize holds the longest utf-8 scalar value plus slack.
const readerBufferSize = 12

// maxScalarWidth is the number of bytes kept available before decoding so a
// scalar never straddles a refill.
const maxScalarWidth = 4

var errInvalidUTF8 = errors.New("invalid utf-8 byte sequence")

// DecodeError reports the position of a byte that does not start a valid
// utf-8 scalar value.
type DecodeError struct {
	Offset int64
	Byte   byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at byte %d (0x%02x)", errInvalidUTF8, e.Offset, e.Byte)
}

func (e *DecodeError) Unwrap() error {
	return errInvalidUTF8
}

// utf8Reader yields one rune at a time from a byte stream without loading
// the whole stream into memory.
type utf8Reader struct {
	src    io.Reader
	buf    [readerBufferSize]byte
	start  int
	end    int
	offset int64
	eof    bool
	err    error
}

func newUTF8Reader(src io.Reader) *utf8Reader {
	return &utf8Reader{src: src}
}

func (r *utf8Reader) avail() int {
	return r.end - r.start
}

// fill tops the buffer up until maxScalarWidth bytes are available or the
// source is exhausted.
func (r *utf8Reader) fill() error {
	if r.avail() >= maxScalarWidth || r.eof {
		return nil
	}
	if r.start > 0 {
		copy(r.buf[:], r.buf[r.start:r.end])
		r.end -= r.start
		r.start = 0
	}
	for r.avail() < maxScalarWidth && !r.eof {
		n, err := r.src.Read(r.buf[r.end:])
		r.end += n
		if err == io.EOF {
			r.eof = true
			break
		}
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
	}
	return nil
}

// Next returns the next scalar value. It returns io.EOF once the source is
// exhausted and keeps returning it on every later call.
func (r *utf8Reader) Next() (rune, error) {
	if r.err != nil {
		return 0, r.err
	}
	if err := r.fill(); err != nil {
		r.err = err
		return 0, err
	}
	if r.avail() == 0 {
		return 0, io.EOF
	}

	lead := r.buf[r.start]
	width := int(utf8CharWidth[lead])
	if width == 0 || width > r.avail() {
		r.err = &DecodeError{Offset: r.offset, Byte: lead}
		return 0, r.err
	}

	c, size := utf8.DecodeRune(r.buf[r.start : r.start+width])
	if size != width {
		r.err = &DecodeError{Offset: r.offset, Byte: lead}
		return 0, r.err
	}

	r.start += width
	r.offset += int64(width)
	return c, nil
}

// utf8CharWidth maps a lead byte to the width of the scalar it starts, or 0
// when the byte cannot start one. See RFC 3629.
var utf8CharWidth = [256]uint8{
	// 1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 1
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 2
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 3
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 4
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 5
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 6
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 7
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 8
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 9
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // A
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // B
	0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // C
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // D
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // E
	4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // F
}

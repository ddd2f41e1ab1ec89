// seehuhn.de/go/rawimage - decode raw image samples from PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package runlength implements the RunLengthDecode filter.
package runlength

import (
	"bufio"
	"io"
)

// Decode returns a reader which decodes run-length encoded data.
// A length byte of 128, or the end of the input, ends the data.
func Decode(r io.Reader) io.ReadCloser {
	return &reader{r: bufio.NewReader(r)}
}

type reader struct {
	r *bufio.Reader

	// the current run: either count literal bytes from the input,
	// or count copies of value
	count   int
	literal bool
	value   byte

	err error
}

// Read implements the [io.Reader] interface.
func (r *reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.count == 0 {
			if r.err != nil {
				break
			}
			r.err = r.nextRun()
			continue
		}

		k := min(r.count, len(p)-n)
		if r.literal {
			got, err := io.ReadFull(r.r, p[n:n+k])
			n += got
			r.count -= got
			if err != nil {
				r.count = 0
				r.err = io.ErrUnexpectedEOF
			}
		} else {
			for i := n; i < n+k; i++ {
				p[i] = r.value
			}
			n += k
			r.count -= k
		}
	}

	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

func (r *reader) nextRun() error {
	length, err := r.r.ReadByte()
	if err != nil {
		return err // io.EOF without an end marker is tolerated
	}

	switch {
	case length < 128:
		r.count = int(length) + 1
		r.literal = true
	case length > 128:
		value, err := r.r.ReadByte()
		if err != nil {
			return io.ErrUnexpectedEOF
		}
		r.count = 257 - int(length)
		r.literal = false
		r.value = value
	default:
		return io.EOF
	}
	return nil
}

// Close is a no-op.
func (r *reader) Close() error {
	return nil
}

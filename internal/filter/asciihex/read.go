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

// Package asciihex implements the ASCIIHexDecode filter.
package asciihex

import (
	"bufio"
	"fmt"
	"io"
)

// Decode returns a reader which decodes ASCII hexadecimal data.
// White space is ignored and '>' marks the end of the data.  If the data
// ends with an odd number of digits, the last digit is followed by an
// implied 0.
func Decode(r io.Reader) io.ReadCloser {
	return &reader{r: bufio.NewReader(r)}
}

type reader struct {
	r *bufio.Reader

	// high is the pending first digit of a byte, if haveHigh is set
	high     byte
	haveHigh bool

	err error
}

func (r *reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && r.err == nil {
		c, err := r.r.ReadByte()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			r.err = err
			break
		}

		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c == 0 || c == 9 || c == 10 || c == 12 || c == 13 || c == 32:
			continue
		case c == '>':
			if r.haveHigh {
				p[n] = r.high << 4
				n++
				r.haveHigh = false
			}
			r.err = io.EOF
			continue
		default:
			r.err = fmt.Errorf("asciihex: invalid character %q", c)
			continue
		}

		if r.haveHigh {
			p[n] = r.high<<4 | d
			n++
			r.haveHigh = false
		} else {
			r.high = d
			r.haveHigh = true
		}
	}

	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

func (r *reader) Close() error {
	if r.err == nil || r.err == io.EOF {
		return nil
	}
	return r.err
}

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

package filter

import (
	"bufio"
	"bytes"
	"encoding/ascii85"
	"io"
)

// decodeASCII85 returns a reader for ASCII base-85 encoded data.
// The data ends at the "~>" marker.
func decodeASCII85(r io.Reader) io.ReadCloser {
	return io.NopCloser(ascii85.NewDecoder(&eodReader{r: bufio.NewReader(r)}))
}

// eodReader passes data through until the "~>" end-of-data marker.
// A leading "<~" is removed.
type eodReader struct {
	r       *bufio.Reader
	started bool
	done    bool
}

func (e *eodReader) Read(p []byte) (int, error) {
	if e.done {
		return 0, io.EOF
	}
	if !e.started {
		e.started = true
		e.skipStart()
	}

	n := 0
	for n < len(p) {
		c, err := e.r.ReadByte()
		if err != nil {
			e.done = true
			break
		}
		if c == '~' {
			// the marker ends the data, even if the '>' is missing
			e.done = true
			break
		}
		p[n] = c
		n++
	}
	if n == 0 && e.done {
		return 0, io.EOF
	}
	return n, nil
}

func (e *eodReader) skipStart() {
	for {
		c, err := e.r.ReadByte()
		if err != nil {
			return
		}
		if !isSpace(c) {
			e.r.UnreadByte()
			break
		}
	}
	start, err := e.r.Peek(2)
	if err == nil && bytes.Equal(start, []byte("<~")) {
		e.r.Discard(2)
	}
}

func isSpace(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32:
		return true
	default:
		return false
	}
}

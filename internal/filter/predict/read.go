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

package predict

import (
	"fmt"
	"io"

	"seehuhn.de/go/rawimage"
)

// reader undoes the effect of a predictor on the data read from it.
type reader struct {
	r io.ReadCloser
	p *Params

	in   []byte // one encoded row, including the PNG tag byte
	prev []byte // the previous decoded row, PNG only
	cur  []byte // the current decoded row
	pos  int    // read position in cur
	err  error
}

// NewReader returns a reader which reverses the predictor described by p.
// For predictor 1, r is returned unchanged.
//
// A final incomplete row is decoded as far as the data goes.
func NewReader(r io.ReadCloser, p *Params) (io.ReadCloser, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Predictor == 1 {
		return r, nil
	}

	rowBytes := p.bytesPerRow()
	res := &reader{
		r:   r,
		p:   p,
		cur: make([]byte, 0, rowBytes),
	}
	if p.Predictor >= 10 {
		res.in = make([]byte, 1+rowBytes)
		res.prev = make([]byte, rowBytes)
	} else {
		res.in = make([]byte, rowBytes)
	}
	return res, nil
}

// Read implements the [io.Reader] interface.
func (r *reader) Read(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		if r.pos < len(r.cur) {
			k := copy(buf[n:], r.cur[r.pos:])
			r.pos += k
			n += k
			continue
		}
		if r.err != nil {
			break
		}
		r.err = r.nextRow()
	}
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

// Close closes the underlying reader.
func (r *reader) Close() error {
	return r.r.Close()
}

func (r *reader) nextRow() error {
	k, err := io.ReadFull(r.r, r.in)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	if k == 0 {
		if err == nil {
			err = io.EOF
		}
		return err
	}

	if r.p.Predictor == 2 {
		r.cur = append(r.cur[:0], r.in[:k]...)
		r.undoTIFF(r.cur)
	} else {
		if decErr := r.undoPNG(r.in[0], r.in[1:k]); decErr != nil {
			return decErr
		}
	}
	r.pos = 0
	return err
}

func (r *reader) undoPNG(tag byte, data []byte) error {
	bpp := r.p.bytesPerPixel()
	cur := r.cur[:len(data)]
	prev := r.prev

	switch tag {
	case 0: // None
		copy(cur, data)
	case 1: // Sub
		for i, d := range data {
			var left byte
			if i >= bpp {
				left = cur[i-bpp]
			}
			cur[i] = d + left
		}
	case 2: // Up
		for i, d := range data {
			cur[i] = d + prev[i]
		}
	case 3: // Average
		for i, d := range data {
			var left int
			if i >= bpp {
				left = int(cur[i-bpp])
			}
			cur[i] = d + byte((left+int(prev[i]))/2)
		}
	case 4: // Paeth
		for i, d := range data {
			var left, upLeft byte
			if i >= bpp {
				left = cur[i-bpp]
				upLeft = prev[i-bpp]
			}
			cur[i] = d + paeth(left, prev[i], upLeft)
		}
	default:
		return fmt.Errorf("invalid PNG predictor tag %d", tag)
	}

	r.cur = cur
	copy(r.prev, cur)
	return nil
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// undoTIFF reverses horizontal differencing on one row, in place.
func (r *reader) undoTIFF(row []byte) {
	colors := r.p.Colors
	bpc := r.p.BitsPerComponent

	switch bpc {
	case 8:
		for i := colors; i < len(row); i++ {
			row[i] += row[i-colors]
		}
	case 16:
		step := 2 * colors
		for i := step; i+1 < len(row); i += 2 {
			v := uint16(row[i])<<8 | uint16(row[i+1])
			v += uint16(row[i-step])<<8 | uint16(row[i-step+1])
			row[i] = byte(v >> 8)
			row[i+1] = byte(v)
		}
	default:
		mask := uint16(1)<<bpc - 1
		n := min(colors*r.p.Columns, 8*len(row)/bpc)
		for j := colors; j < n; j++ {
			pos := j * bpc
			v := rawimage.Component(row, pos, bpc) + rawimage.Component(row, pos-colors*bpc, bpc)
			putBits(row, pos, bpc, v&mask)
		}
	}
}

// putBits stores a sub-byte component at the given bit position.
func putBits(row []byte, bitOffset, bpc int, v uint16) {
	shift := 8 - bitOffset&7 - bpc
	mask := byte(1<<bpc-1) << shift
	idx := bitOffset >> 3
	row[idx] = row[idx]&^mask | byte(v)<<shift
}

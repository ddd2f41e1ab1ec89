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

package rawimage

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// compile-time interface checks
var (
	_ image.Image = (*Bitmap)(nil)
	_ draw.Image  = (*Bitmap)(nil)
)

// DefaultMaxPixels is the largest bitmap, in pixels, which the decoder
// allocates unless [Options.MaxPixels] says otherwise.
const DefaultMaxPixels = 1 << 28

// Bitmap is an opaque RGB image with 8 bits per channel.
type Bitmap struct {
	// Pix holds the pixel data.  The pixel at (x, y) occupies the three
	// bytes starting at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3],
	// in the order red, green, blue.
	Pix []uint8

	// Stride is the number of bytes per row.
	Stride int

	// Rect is the image bounds.
	Rect image.Rectangle
}

// NewBitmap allocates a black bitmap of the given size.
// The call fails with [ErrAllocation] if the image would have more than
// maxPixels pixels, or if the size cannot be represented.
func NewBitmap(width, height, maxPixels int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrInvalidDimension, width, height)
	}
	if width > math.MaxInt/3/height {
		return nil, fmt.Errorf("%w: %d x %d pixels overflow", ErrAllocation, width, height)
	}
	if maxPixels > 0 && width*height > maxPixels {
		return nil, fmt.Errorf("%w: %d x %d exceeds limit of %d pixels",
			ErrAllocation, width, height, maxPixels)
	}
	return &Bitmap{
		Pix:    make([]uint8, 3*width*height),
		Stride: 3 * width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// ColorModel returns [color.RGBAModel].
// This implements the [image.Image] interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the image bounds.
// This implements the [image.Image] interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

// At returns the color of the pixel at (x, y).
// This implements the [image.Image] interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.RGBAAt(x, y)
}

// RGBAAt returns the color of the pixel at (x, y).
// Pixels outside the image bounds are transparent black.
func (b *Bitmap) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(b.Rect)) {
		return color.RGBA{}
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+3 : i+3]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: 255}
}

// Set changes the color of the pixel at (x, y).
// The alpha channel of c is ignored.  Pixels outside the image bounds are
// not changed.
// This implements the [draw.Image] interface.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(b.Rect)) {
		return
	}
	c1 := color.RGBAModel.Convert(c).(color.RGBA)
	b.SetRGB(x, y, c1.R, c1.G, c1.B)
}

// SetRGB changes the color of the pixel at (x, y).
func (b *Bitmap) SetRGB(x, y int, r, g, bl uint8) {
	if !(image.Point{x, y}.In(b.Rect)) {
		return
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+3 : i+3]
	s[0] = r
	s[1] = g
	s[2] = bl
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (b *Bitmap) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x-b.Rect.Min.X)*3
}

// Opaque returns true.
func (b *Bitmap) Opaque() bool {
	return true
}

// RGBA converts the bitmap into an [image.RGBA].
// Image encoders in the standard library have fast paths for this type.
func (b *Bitmap) RGBA() *image.RGBA {
	dst := image.NewRGBA(b.Rect)
	w := b.Rect.Dx()
	for y := 0; y < b.Rect.Dy(); y++ {
		src := b.Pix[y*b.Stride : y*b.Stride+3*w]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+4*w]
		for x := 0; x < w; x++ {
			row[4*x] = src[3*x]
			row[4*x+1] = src[3*x+1]
			row[4*x+2] = src[3*x+2]
			row[4*x+3] = 255
		}
	}
	return dst
}

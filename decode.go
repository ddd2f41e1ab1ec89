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
	"log/slog"
)

// Descriptor describes the layout of the sample data of an image.
type Descriptor struct {
	Width            int
	Height           int
	BitsPerComponent int
	ColorSpace       ColorSpace
}

// Validate checks that the descriptor describes a decodable image.
func (d *Descriptor) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %d x %d", ErrInvalidDimension, d.Width, d.Height)
	}
	if !validDepth(d.BitsPerComponent) {
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, d.BitsPerComponent)
	}
	if !d.ColorSpace.valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedColorSpace, d.ColorSpace)
	}
	return nil
}

// RowBytes returns the number of bytes used for one row of samples.
// Rows are padded to a whole number of bytes.
func (d *Descriptor) RowBytes() int {
	return (d.Width*d.ColorSpace.Channels()*d.BitsPerComponent + 7) / 8
}

// Len returns the length of the complete sample data, in bytes.
func (d *Descriptor) Len() int {
	return d.RowBytes() * d.Height
}

// minLen returns the length below which the sample data is rejected as
// truncated.  This ignores the row padding, so data which passes this check
// can still end before the last pixel.
func (d *Descriptor) minLen() int {
	return d.Width * d.Height * d.ColorSpace.Channels() * d.BitsPerComponent / 8
}

// Options can be used to control the decoder.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// MaxPixels is the largest number of pixels the decoder allocates.
	// If this is zero, [DefaultMaxPixels] is used.  Negative values
	// disable the limit.
	MaxPixels int

	// Logger, if set, receives debug messages about partially decoded
	// images.
	Logger *slog.Logger
}

// Decode converts sample data into an RGB bitmap.  The color space is given
// by name, see [ParseColorSpace] for the accepted names.
//
// This is a shorthand for [DecodeImage] with default options.
func Decode(buf []byte, width, height, bitsPerComponent int, colorSpace string) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrInvalidDimension, width, height)
	}
	if !validDepth(bitsPerComponent) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitsPerComponent)
	}
	cs, err := ParseColorSpace(colorSpace)
	if err != nil {
		return nil, err
	}

	desc := &Descriptor{
		Width:            width,
		Height:           height,
		BitsPerComponent: bitsPerComponent,
		ColorSpace:       cs,
	}
	return DecodeImage(buf, desc, nil)
}

// DecodeImage converts sample data into an RGB bitmap.
//
// If buf is shorter than width*height*channels*bpc/8 bytes, an error
// wrapping [ErrTruncatedBuffer] is returned.  If buf is long enough for this
// check but too short for the padded rows, the pixels which are covered by
// buf are decoded and the remaining pixels are left black.
func DecodeImage(buf []byte, desc *Descriptor, opt *Options) (*Bitmap, error) {
	if opt == nil {
		opt = &Options{}
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	maxPixels := opt.MaxPixels
	if maxPixels == 0 {
		maxPixels = DefaultMaxPixels
	}
	img, err := NewBitmap(desc.Width, desc.Height, maxPixels)
	if err != nil {
		return nil, err
	}

	if need := desc.minLen(); len(buf) < need {
		return nil, fmt.Errorf("%w: %d bytes, need %d for %d x %d %s at %d bits",
			ErrTruncatedBuffer, len(buf), need,
			desc.Width, desc.Height, desc.ColorSpace, desc.BitsPerComponent)
	}

	x, y, complete := walk(img, buf, desc)
	if !complete && opt.Logger != nil {
		opt.Logger.Debug("image data ends early",
			slog.Int("x", x),
			slog.Int("y", y),
			slog.Int("have", len(buf)),
			slog.Int("want", desc.Len()))
	}
	return img, nil
}

func validDepth(bpc int) bool {
	switch bpc {
	case 1, 2, 4, 8, 16:
		return true
	default:
		return false
	}
}

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

import "errors"

// Errors returned by the decoder.  The returned errors wrap one of these
// values and can be tested using [errors.Is].
var (
	// ErrInvalidDimension indicates that the image width or height is not
	// positive.
	ErrInvalidDimension = errors.New("invalid image dimension")

	// ErrInvalidBitDepth indicates that the number of bits per component is
	// not one of 1, 2, 4, 8 or 16.
	ErrInvalidBitDepth = errors.New("invalid bits per component")

	// ErrUnsupportedColorSpace indicates a color space other than DeviceRGB,
	// DeviceGray or DeviceCMYK.
	ErrUnsupportedColorSpace = errors.New("unsupported color space")

	// ErrTruncatedBuffer indicates that the sample data is too short for the
	// declared image size.
	ErrTruncatedBuffer = errors.New("truncated image data")

	// ErrAllocation indicates that the output bitmap could not be allocated.
	ErrAllocation = errors.New("cannot allocate bitmap")
)

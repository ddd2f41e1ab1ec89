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

// Package rawimage converts the sample data of PDF image XObjects into
// 8-bit RGB bitmaps.
//
// The input is the content of an image stream after all generic stream
// filters have been removed: a sequence of packed color components, row by
// row, where each row starts on a byte boundary.  The layout is described
// by the image width and height, the number of bits per component (1, 2, 4,
// 8 or 16) and the color space.  Three color spaces are supported:
//   - [RGB]: DeviceRGB, written as "DeviceRGB" or "RGB"
//   - [Gray]: DeviceGray, written as "DeviceGray" or "G"
//   - [CMYK]: DeviceCMYK, written as "DeviceCMYK" or "CMYK"
//
// Indexed and ICC-based color spaces are not supported and are rejected
// with [ErrUnsupportedColorSpace].
//
// A minimal example:
//
//	img, err := rawimage.Decode(data, 640, 480, 8, "DeviceRGB")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	... img implements image.Image ...
//
// If the data is shorter than width*height*channels*bpc/8 bytes, decoding
// fails with [ErrTruncatedBuffer].  If the data passes this check but runs
// out before the last pixel, because rows are padded to whole bytes, the
// remaining pixels are left black.
package rawimage

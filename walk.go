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

// pixelFunc converts the components of one pixel into RGB values and
// stores these in dst[0:3].
type pixelFunc func(dst []uint8, comp []uint16, bpc int)

func (cs ColorSpace) pixelFunc() pixelFunc {
	switch cs {
	case RGB:
		return rgbPixel
	case Gray:
		return grayPixel
	case CMYK:
		return cmykPixel
	default:
		return nil
	}
}

// walk fills img with the pixels stored in buf, in row-major order.
// If buf ends before the last pixel, walk stops at the first pixel which is
// not completely contained in buf and returns its coordinates.
func walk(img *Bitmap, buf []byte, desc *Descriptor) (x, y int, complete bool) {
	bpc := desc.BitsPerComponent
	nComp := desc.ColorSpace.Channels()
	pixelBits := nComp * bpc
	rowBytes := desc.RowBytes()
	totalBits := 8 * len(buf)
	setPixel := desc.ColorSpace.pixelFunc()

	var compBuf [4]uint16
	comp := compBuf[:nComp]

	for y = 0; y < desc.Height; y++ {
		pos := 8 * y * rowBytes
		row := img.Pix[y*img.Stride : (y+1)*img.Stride]
		for x = 0; x < desc.Width; x++ {
			if pos+pixelBits > totalBits {
				return x, y, false
			}

			// fast path for 8 bit components
			if bpc == 8 {
				idx := pos >> 3
				for i := range comp {
					comp[i] = uint16(buf[idx+i])
				}
			} else {
				for i := range comp {
					comp[i] = Component(buf, pos+i*bpc, bpc)
				}
			}

			setPixel(row[3*x:3*x+3], comp, bpc)
			pos += pixelBits
		}
	}
	return 0, desc.Height, true
}

func rgbPixel(dst []uint8, comp []uint16, bpc int) {
	dst[0] = scale8(comp[0], bpc)
	dst[1] = scale8(comp[1], bpc)
	dst[2] = scale8(comp[2], bpc)
}

func grayPixel(dst []uint8, comp []uint16, bpc int) {
	v := scale8(comp[0], bpc)
	dst[0] = v
	dst[1] = v
	dst[2] = v
}

func cmykPixel(dst []uint8, comp []uint16, bpc int) {
	c := unit(comp[0], bpc)
	m := unit(comp[1], bpc)
	y := unit(comp[2], bpc)
	k := unit(comp[3], bpc)
	dst[0], dst[1], dst[2] = cmykToRGB(c, m, y, k)
}

// cmykToRGB converts CMYK values in the range [0, 1] to 8-bit RGB values.
// This is the naive conversion without color management.
func cmykToRGB(c, m, y, k float64) (r, g, b uint8) {
	r = uint8((1 - c) * (1 - k) * 255)
	g = uint8((1 - m) * (1 - k) * 255)
	b = uint8((1 - y) * (1 - k) * 255)
	return r, g, b
}

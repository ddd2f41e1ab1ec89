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

// Component returns the value of the color component which starts at bit
// position bitOffset in buf, where bit 0 is the most significant bit of
// buf[0].  The argument bpc is the number of bits per component and must
// be one of 1, 2, 4, 8 or 16.  For sub-byte components, bitOffset must be
// a multiple of bpc.  16-bit components are stored most significant byte
// first.
//
// Bytes beyond the end of buf read as zero.
func Component(buf []byte, bitOffset, bpc int) uint16 {
	idx := bitOffset >> 3

	switch bpc {
	case 8:
		if idx < 0 || idx >= len(buf) {
			return 0
		}
		return uint16(buf[idx])

	case 16:
		if idx < 0 || idx >= len(buf) {
			return 0
		}
		v := uint16(buf[idx]) << 8
		if idx+1 < len(buf) {
			v |= uint16(buf[idx+1])
		}
		return v

	default:
		if idx < 0 || idx >= len(buf) {
			return 0
		}
		shift := 8 - bitOffset&7 - bpc
		return uint16(buf[idx]>>shift) & (1<<bpc - 1)
	}
}

// scale8 maps a component value with the given bit depth to the range
// 0-255.  16-bit values keep their most significant byte.
func scale8(v uint16, bpc int) uint8 {
	switch bpc {
	case 8:
		return uint8(v)
	case 16:
		return uint8(v >> 8)
	default:
		return uint8(uint(v) * 255 / (1<<bpc - 1))
	}
}

// unit maps a component value with the given bit depth to the range
// [0, 1].
func unit(v uint16, bpc int) float64 {
	return float64(v) / float64(uint32(1)<<bpc-1)
}

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
	"slices"
)

// ColorSpace identifies one of the supported device color spaces.
type ColorSpace int

// The supported color spaces.  The zero value is not a valid color space.
const (
	RGB ColorSpace = iota + 1
	Gray
	CMYK
)

// colorSpaceNames maps the accepted spellings to color spaces.  The short
// forms are the abbreviations used in PDF inline images.
var colorSpaceNames = map[string]ColorSpace{
	"DeviceRGB":  RGB,
	"RGB":        RGB,
	"DeviceGray": Gray,
	"G":          Gray,
	"DeviceCMYK": CMYK,
	"CMYK":       CMYK,
}

// ParseColorSpace converts a PDF color space name into a ColorSpace.
//
// Indexed and ICC-based color spaces, as well as all other names, are
// rejected with an error wrapping [ErrUnsupportedColorSpace].
func ParseColorSpace(name string) (ColorSpace, error) {
	if cs, ok := colorSpaceNames[name]; ok {
		return cs, nil
	}
	switch name {
	case "Indexed", "I":
		return 0, fmt.Errorf("%w: indexed color spaces are not supported",
			ErrUnsupportedColorSpace)
	case "ICCBased":
		return 0, fmt.Errorf("%w: ICC-based color spaces are not supported",
			ErrUnsupportedColorSpace)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedColorSpace, name)
}

// ColorSpaceNames returns all names accepted by [ParseColorSpace], in
// sorted order.
func ColorSpaceNames() []string {
	names := make([]string, 0, len(colorSpaceNames))
	for name := range colorSpaceNames {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Channels returns the number of color components per pixel.
func (cs ColorSpace) Channels() int {
	switch cs {
	case RGB:
		return 3
	case Gray:
		return 1
	case CMYK:
		return 4
	default:
		return 0
	}
}

// String returns the canonical PDF name of the color space.
func (cs ColorSpace) String() string {
	switch cs {
	case RGB:
		return "DeviceRGB"
	case Gray:
		return "DeviceGray"
	case CMYK:
		return "DeviceCMYK"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(cs))
	}
}

func (cs ColorSpace) valid() bool {
	return cs >= RGB && cs <= CMYK
}

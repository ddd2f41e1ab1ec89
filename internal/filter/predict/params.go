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
	"errors"
	"fmt"
)

const maxColumns = 1 << 20

// Params holds the predictor parameters of a FlateDecode or LZWDecode
// filter.
type Params struct {
	// Colors is the number of color components per pixel.
	Colors int

	// BitsPerComponent is the number of bits per color component.
	// Valid values are 1, 2, 4, 8, and 16.
	BitsPerComponent int

	// Columns is the number of pixels per row.
	Columns int

	// Predictor is the prediction algorithm:
	//   1: no prediction
	//   2: TIFF horizontal differencing
	//  10-15: PNG predictors, the algorithm is chosen per row
	Predictor int
}

// Validate checks that the parameters are consistent.
func (p *Params) Validate() error {
	switch {
	case p.Predictor == 1:
		return nil
	case p.Predictor == 2:
		if p.Colors < 1 || p.Colors > 60 {
			return fmt.Errorf("invalid Colors value %d for TIFF predictor", p.Colors)
		}
	case p.Predictor >= 10 && p.Predictor <= 15:
		if p.Colors < 1 || p.Colors > 256 {
			return fmt.Errorf("invalid Colors value %d for PNG predictor", p.Colors)
		}
	default:
		return fmt.Errorf("unsupported predictor %d", p.Predictor)
	}

	switch p.BitsPerComponent {
	case 1, 2, 4, 8, 16:
		// pass
	default:
		return fmt.Errorf("invalid BitsPerComponent value %d", p.BitsPerComponent)
	}

	maxCols := min(maxColumns, (1<<31-1)/(p.Colors*p.BitsPerComponent))
	if p.Columns < 1 || p.Columns > maxCols {
		return errors.New("invalid Columns value")
	}
	return nil
}

func (p *Params) bitsPerPixel() int {
	return p.Colors * p.BitsPerComponent
}

func (p *Params) bytesPerRow() int {
	return (p.bitsPerPixel()*p.Columns + 7) / 8
}

// bytesPerPixel gives the distance used by the PNG predictors.
// This is at least one.
func (p *Params) bytesPerPixel() int {
	return (p.bitsPerPixel() + 7) / 8
}

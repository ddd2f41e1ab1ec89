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

package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"golang.org/x/image/draw"

	"seehuhn.de/go/rawimage"
	"seehuhn.de/go/rawimage/internal/filter"
)

// job describes the conversion of one image stream.
// This is also the format of the entries in a batch manifest.
type job struct {
	Input            string   `json:"input"`
	Output           string   `json:"output"`
	Width            int      `json:"width"`
	Height           int      `json:"height"`
	BitsPerComponent int      `json:"bitsPerComponent"`
	ColorSpace       string   `json:"colorSpace"`
	Filters          []string `json:"filters,omitempty"`
	Predictor        int      `json:"predictor,omitempty"`
	Colors           int      `json:"colors,omitempty"`
	Columns          int      `json:"columns,omitempty"`
	EarlyChange      *int     `json:"earlyChange,omitempty"`

	// MaxSize, if positive, limits the longer side of the output image.
	MaxSize int `json:"maxSize,omitempty"`
}

// result summarises a finished job.
type result struct {
	Path   string // the file written
	Codec  string // name of the image codec, if the data was copied
	Width  int
	Height int
	Bytes  int // length of the unfiltered stream data
}

func (r *result) String() string {
	if r.Codec != "" {
		return printer.Sprintf("%s data, %d bytes copied", r.Codec, r.Bytes)
	}
	return printer.Sprintf("%d x %d pixels from %d bytes", r.Width, r.Height, r.Bytes)
}

// filters returns the filter chain of the job.  Unless Colors and Columns
// are given explicitly, the predictor parameters are derived from the image
// layout.
func (j *job) filters() []filter.Filter {
	colors, columns := j.Colors, j.Columns
	if colors == 0 {
		cs, _ := rawimage.ParseColorSpace(normalizeName(j.ColorSpace))
		colors = cs.Channels()
	}
	if columns == 0 {
		columns = j.Width
	}

	var res []filter.Filter
	for _, name := range j.Filters {
		f := filter.Filter{Name: normalizeName(name), Parms: map[string]int{}}
		if j.Predictor > 1 {
			f.Parms["Predictor"] = j.Predictor
			f.Parms["Colors"] = colors
			f.Parms["BitsPerComponent"] = j.BitsPerComponent
			f.Parms["Columns"] = columns
		}
		if j.EarlyChange != nil {
			f.Parms["EarlyChange"] = *j.EarlyChange
		}
		res = append(res, f)
	}
	return res
}

// normalizeName removes the leading slash of a PDF name.
func normalizeName(name string) string {
	return strings.TrimPrefix(name, "/")
}

func runJob(j *job, opt *rawimage.Options) (*result, error) {
	in, err := os.Open(j.Input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	filters := j.filters()
	r, err := filter.Decode(in, filters)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if closeErr := r.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", j.Input, err)
	}

	if codec, ok := filter.Codec(filters); ok {
		out := codecPath(j.Output, codec)
		err = writeFile(out, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
		if err != nil {
			return nil, err
		}
		return &result{Path: out, Codec: codec, Bytes: len(data)}, nil
	}

	cs, err := rawimage.ParseColorSpace(normalizeName(j.ColorSpace))
	if err != nil {
		return nil, err
	}
	desc := &rawimage.Descriptor{
		Width:            j.Width,
		Height:           j.Height,
		BitsPerComponent: j.BitsPerComponent,
		ColorSpace:       cs,
	}
	img, err := rawimage.DecodeImage(data, desc, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", j.Input, err)
	}

	out := scale(img.RGBA(), j.MaxSize)
	err = writeImage(j.Output, out)
	if err != nil {
		return nil, err
	}

	b := out.Bounds()
	return &result{Path: j.Output, Width: b.Dx(), Height: b.Dy(), Bytes: len(data)}, nil
}

// scale reduces the image so that neither side is longer than maxSize.
func scale(img *image.RGBA, maxSize int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}

	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

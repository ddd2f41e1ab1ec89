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

// Package filter removes PDF stream filters from image data.
//
// The generic filters FlateDecode, LZWDecode, ASCIIHexDecode, ASCII85Decode
// and RunLengthDecode are undone.  The image codecs DCTDecode, JPXDecode,
// JBIG2Decode and CCITTFaxDecode are not decoded: they may only appear as
// the last filter of a chain, and the data is returned in the form expected
// by the codec.
package filter

import (
	"compress/lzw"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	tifflzw "golang.org/x/image/tiff/lzw"

	"seehuhn.de/go/rawimage/internal/filter/asciihex"
	"seehuhn.de/go/rawimage/internal/filter/predict"
	"seehuhn.de/go/rawimage/internal/filter/runlength"
)

// ErrUnknownFilter is returned for filter names which are not recognised.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter is one entry of a filter chain.
type Filter struct {
	// Name is the filter name, either in full form ("FlateDecode") or
	// abbreviated as in inline images ("Fl").
	Name string

	// Parms holds the integer entries of the filter's decode parameters.
	// Missing entries take their default value.
	Parms map[string]int
}

var defaultParms = map[string]int{
	"Predictor":        1,
	"Colors":           1,
	"BitsPerComponent": 8,
	"Columns":          1,
	"EarlyChange":      1,
}

func (f Filter) param(key string) int {
	if val, ok := f.Parms[key]; ok {
		return val
	}
	return defaultParms[key]
}

// canonical filter names, indexed by all accepted spellings
var filterNames = map[string]string{
	"FlateDecode":     "FlateDecode",
	"Fl":              "FlateDecode",
	"LZWDecode":       "LZWDecode",
	"LZW":             "LZWDecode",
	"ASCIIHexDecode":  "ASCIIHexDecode",
	"AHx":             "ASCIIHexDecode",
	"ASCII85Decode":   "ASCII85Decode",
	"A85":             "ASCII85Decode",
	"RunLengthDecode": "RunLengthDecode",
	"RL":              "RunLengthDecode",
	"DCTDecode":       "DCTDecode",
	"DCT":             "DCTDecode",
	"CCITTFaxDecode":  "CCITTFaxDecode",
	"CCF":             "CCITTFaxDecode",
	"JPXDecode":       "JPXDecode",
	"JBIG2Decode":     "JBIG2Decode",
}

var codecs = map[string]bool{
	"DCTDecode":      true,
	"CCITTFaxDecode": true,
	"JPXDecode":      true,
	"JBIG2Decode":    true,
}

// Canonical returns the full name of a filter.
func Canonical(name string) (string, error) {
	full, ok := filterNames[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownFilter, name)
	}
	return full, nil
}

// Codec returns the canonical name of the image codec at the end of the
// filter chain.  If the chain does not end in an image codec, ok is false.
func Codec(filters []Filter) (name string, ok bool) {
	if len(filters) == 0 {
		return "", false
	}
	full, err := Canonical(filters[len(filters)-1].Name)
	if err != nil || !codecs[full] {
		return "", false
	}
	return full, true
}

// Decode returns a reader which undoes the given filters, in order.
// If the chain ends in an image codec, the reader returns the data in the
// form expected by the codec.
func Decode(r io.Reader, filters []Filter) (io.ReadCloser, error) {
	res := &chain{Reader: r}
	for i, f := range filters {
		name, err := Canonical(f.Name)
		if err != nil {
			res.Close()
			return nil, err
		}
		if codecs[name] {
			if i != len(filters)-1 {
				res.Close()
				return nil, fmt.Errorf("filter %s must be the last filter", name)
			}
			break
		}

		next, err := apply(res.Reader, name, f)
		if err != nil {
			res.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		res.Reader = next
		res.closers = append(res.closers, next)
	}
	return res, nil
}

func apply(r io.Reader, name string, f Filter) (io.ReadCloser, error) {
	switch name {
	case "FlateDecode":
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, err
		}
		return withPredictor(zr, f)

	case "LZWDecode":
		var lr io.ReadCloser
		switch f.param("EarlyChange") {
		case 0:
			lr = lzw.NewReader(r, lzw.MSB, 8)
		case 1:
			lr = tifflzw.NewReader(r, tifflzw.MSB, 8)
		default:
			return nil, fmt.Errorf("invalid EarlyChange value %d", f.param("EarlyChange"))
		}
		return withPredictor(lr, f)

	case "ASCIIHexDecode":
		return asciihex.Decode(r), nil

	case "ASCII85Decode":
		return decodeASCII85(r), nil

	case "RunLengthDecode":
		return runlength.Decode(r), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFilter, name)
}

func withPredictor(r io.ReadCloser, f Filter) (io.ReadCloser, error) {
	p := &predict.Params{
		Colors:           f.param("Colors"),
		BitsPerComponent: f.param("BitsPerComponent"),
		Columns:          f.param("Columns"),
		Predictor:        f.param("Predictor"),
	}
	pr, err := predict.NewReader(r, p)
	if err != nil {
		r.Close()
		return nil, err
	}
	return pr, nil
}

// chain reads from the last filter and closes all filters.
type chain struct {
	io.Reader
	closers []io.Closer
}

func (c *chain) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

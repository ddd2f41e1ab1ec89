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
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/term"
)

var errTerminal = errors.New("refusing to write binary data to a terminal")

// formatFor selects the output format from the file name extension.
// Output to stdout ("-") is always PNG.
func formatFor(path string) (string, error) {
	if path == "-" {
		return "png", nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".tif", ".tiff":
		return "tiff", nil
	case ".bmp":
		return "bmp", nil
	default:
		return "", fmt.Errorf("%s: unsupported output format %q", path, ext)
	}
}

// codecExt gives the file name extension used for raw codec data.
var codecExt = map[string]string{
	"DCTDecode":      ".jpg",
	"JPXDecode":      ".jp2",
	"JBIG2Decode":    ".jb2",
	"CCITTFaxDecode": ".ccitt",
}

// codecPath returns the output path for codec data.  If path has no
// extension, the extension of the codec is appended.
func codecPath(path, codec string) string {
	if path == "-" || filepath.Ext(path) != "" {
		return path
	}
	return path + codecExt[codec]
}

func writeImage(path string, img image.Image) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		switch format {
		case "tiff":
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		case "bmp":
			return bmp.Encode(w, img)
		default:
			return png.Encode(w, img)
		}
	})
}

// writeFile atomically replaces the file at path with the data written by
// write.  The path "-" denotes stdout, which must not be a terminal.
func writeFile(path string, write func(io.Writer) error) error {
	if path == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		return write(os.Stdout)
	}

	t, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer t.Cleanup()

	if err := write(t); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := t.Chmod(0o644); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}

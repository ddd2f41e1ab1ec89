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

// Raw2img converts the sample data of PDF image streams into PNG, TIFF or
// BMP files.
//
// The input file holds the stream data as stored in the PDF file.  Stream
// filters given on the command line are removed before the samples are
// decoded.  Data compressed with an image codec (DCTDecode, JPXDecode,
// JBIG2Decode, CCITTFaxDecode) is written to the output unchanged.
//
// Usage:
//
//	raw2img decode -W 640 -H 480 --bpc 8 --colorspace DeviceRGB \
//	    --filter FlateDecode in.bin out.png
//	raw2img batch manifest.json
//	raw2img spaces
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/rawimage"
)

var rootCmd = &cobra.Command{
	Use:           "raw2img",
	Short:         "Convert raw PDF image samples into image files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	verbose   bool
	maxPixels int
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log details about partially decoded images")
	rootCmd.PersistentFlags().IntVar(&maxPixels, "max-pixels", rawimage.DefaultMaxPixels, "refuse images with more pixels than this")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "raw2img:", err)
		os.Exit(1)
	}
}

// decoderOptions returns the options shared by all sub-commands.
func decoderOptions() *rawimage.Options {
	opt := &rawimage.Options{
		MaxPixels: maxPixels,
	}
	if verbose {
		opt.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return opt
}

var printer = message.NewPrinter(language.English)

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
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] input output",
	Short: "Convert one image stream",
	Long: `Convert the data of one image stream into an image file.

The output format is chosen by the file name extension: .png, .tif, .tiff
or .bmp.  The output "-" writes PNG data to stdout.  If the last filter is
an image codec, the codec data is written to the output unchanged; an
output name without extension then gets the extension of the codec.`,
	Args: cobra.ExactArgs(2),
	RunE: runDecode,
}

var decodeJob job

func init() {
	fl := decodeCmd.Flags()
	fl.IntVarP(&decodeJob.Width, "width", "W", 0, "image width in pixels")
	fl.IntVarP(&decodeJob.Height, "height", "H", 0, "image height in pixels")
	fl.IntVar(&decodeJob.BitsPerComponent, "bpc", 8, "bits per color component (1, 2, 4, 8 or 16)")
	fl.StringVar(&decodeJob.ColorSpace, "colorspace", "DeviceRGB", "color space (see \"raw2img spaces\")")
	fl.StringSliceVar(&decodeJob.Filters, "filter", nil, "stream filter, may be repeated (in the order given in the PDF file)")
	fl.IntVar(&decodeJob.Predictor, "predictor", 1, "predictor of the FlateDecode or LZWDecode filter")
	fl.IntVar(&decodeJob.Colors, "colors", 0, "Colors parameter of the predictor (default: from the color space)")
	fl.IntVar(&decodeJob.Columns, "columns", 0, "Columns parameter of the predictor (default: the image width)")
	fl.Int("early-change", 1, "EarlyChange parameter of the LZWDecode filter")
	fl.IntVar(&decodeJob.MaxSize, "max-size", 0, "downscale so that no side is longer than this")
	decodeCmd.MarkFlagRequired("width")
	decodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	j := decodeJob
	j.Input = args[0]
	j.Output = args[1]
	if cmd.Flags().Changed("early-change") {
		earlyChange, _ := cmd.Flags().GetInt("early-change")
		j.EarlyChange = &earlyChange
	}

	res, err := runJob(&j, decoderOptions())
	if err != nil {
		return err
	}
	if res.Path != "-" {
		printer.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Path, res)
	}
	return nil
}

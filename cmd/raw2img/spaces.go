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
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/rawimage"
)

var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "List the supported color space names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSpaces(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(spacesCmd)
}

func listSpaces(w io.Writer) error {
	for _, name := range rawimage.ColorSpaceNames() {
		cs, err := rawimage.ParseColorSpace(name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%-12s %s, %d channels\n", name, cs, cs.Channels())
		if err != nil {
			return err
		}
	}
	return nil
}

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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/rawimage"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] manifest.json",
	Short: "Convert many image streams in parallel",
	Long: `Convert all image streams listed in a manifest.

The manifest is a JSON array of objects with the fields "input",
"output", "width", "height", "bitsPerComponent", "colorSpace" and the
optional fields "filters", "predictor", "colors", "columns", "earlyChange"
and "maxSize".
Failed entries are reported and do not stop the remaining conversions.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var batchJobs int

func init() {
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", runtime.NumCPU(), "number of parallel conversions")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := readManifest(args[0])
	if err != nil {
		return err
	}
	return convertAll(cmd.OutOrStdout(), jobs, batchJobs, decoderOptions())
}

func readManifest(path string) ([]*job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jobs []*job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return jobs, nil
}

// convertAll runs the jobs with at most n conversions at a time and reports
// the outcome of each job to w, in manifest order.
func convertAll(w io.Writer, jobs []*job, n int, opt *rawimage.Options) error {
	results := make([]*result, len(jobs))
	errs := make([]error, len(jobs))

	var g errgroup.Group
	g.SetLimit(max(n, 1))
	for i, j := range jobs {
		g.Go(func() error {
			results[i], errs[i] = runJob(j, opt)
			return nil
		})
	}
	g.Wait()

	failed := 0
	for i, j := range jobs {
		if errs[i] != nil {
			failed++
			printer.Fprintf(w, "%s: FAILED: %v\n", j.Output, errs[i])
			continue
		}
		printer.Fprintf(w, "%s: %s\n", results[i].Path, results[i])
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(jobs))
	}
	return nil
}

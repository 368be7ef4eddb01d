// internal/app/report.go
package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"remux/internal/cli"
	"remux/internal/inputs"
	"remux/internal/pipeline"
)

const rule = 50

func printBanner(w io.Writer, opts cli.Options, outPath string, threads int) {
	fmt.Fprintln(w, "Parallel FASTQ Remultiplexing Tool")
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintf(w, "Input directory: %s\n", opts.InputDir)
	fmt.Fprintf(w, "Output file: %s\n", outPath)
	fmt.Fprintf(w, "Barcode length: %d\n", opts.BarcodeLength)
	fmt.Fprintf(w, "Worker threads: %d\n", threads)
	fmt.Fprintf(w, "Chunk size: %d\n\n", opts.ChunkSize)
}

func printInputStats(w io.Writer, files []string, threads int) {
	total := inputs.TotalSize(files)
	gb := float64(total) / (1 << 30)
	fmt.Fprintf(w, "Found %d FASTQ files\n", len(files))
	fmt.Fprintf(w, "Total size: %.2f GB\n", gb)
	fmt.Fprintf(w, "Average file size: %.1f MB\n", float64(total)/float64(len(files))/(1<<20))
	fmt.Fprintf(w, "Estimated processing time: %.1f minutes\n\n", estimateMinutes(gb, threads))
}

// estimateMinutes is a coarse heuristic: ~10 seconds per GB of input,
// divided across workers. Good enough to warn before an hours-long run.
func estimateMinutes(gb float64, threads int) float64 {
	const secondsPerGB = 10
	return gb * secondsPerGB / float64(threads) / 60
}

func printAssignments(w io.Writer, files, barcodes []string) {
	fmt.Fprintln(w, "Barcode assignments (first 10):")
	n := len(files)
	if n > 10 {
		n = 10
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "  %s: %s\n", filepath.Base(files[i]), barcodes[i])
	}
	if len(files) > 10 {
		fmt.Fprintf(w, "  ... and %d more files\n", len(files)-10)
	}
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, st pipeline.Stats, outPath, mapPath string, elapsed time.Duration) {
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintln(w, "Remultiplexing complete!")
	fmt.Fprintf(w, "Files processed: %d (%d failed)\n", st.Files-st.Failed, st.Failed)
	fmt.Fprintf(w, "Total sequences processed: %d\n", st.Records)
	fmt.Fprintf(w, "Processing time: %.1f minutes\n", elapsed.Minutes())
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Fprintf(w, "Sequences per second: %.0f\n", float64(st.Records)/secs)
	}
	fmt.Fprintf(w, "Output file: %s\n", outPath)
	fmt.Fprintf(w, "Barcode mapping: %s\n", mapPath)
}

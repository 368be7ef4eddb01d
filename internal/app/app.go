// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"

	"remux-core/barcode"
	"remux/internal/cli"
	"remux/internal/inputs"
	"remux/internal/pipeline"
	"remux/internal/runutil"
	"remux/internal/version"
	"remux/internal/writers"
)

// Run is the background-context entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("remux")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "remux version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	files, err := inputs.Discover(opts.InputDir)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if len(files) == 0 {
		_, _ = fmt.Fprintf(outw, "No FASTQ files found in %s\n", opts.InputDir)
		return flushCode(outw, stderr, 0)
	}

	// Assignment is fixed up front, before any tagging: file i gets
	// barcode i, so the mapping survives per-file failures.
	barcodes, err := barcode.Generate(len(files), opts.BarcodeLength)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	threads := runutil.EffectiveThreads(opts.Threads)
	outPath := runutil.NormalizeOutput(opts.OutputPath)
	mapPath := runutil.MappingPath(outPath)

	if !opts.Quiet {
		printBanner(outw, opts, outPath, threads)
		printInputStats(outw, files, threads)
		printAssignments(outw, files, barcodes)
		_ = outw.Flush()
	}

	agg, err := writers.NewAggregator(outPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	var bar *pb.ProgressBar
	if !opts.Quiet {
		bar = pb.Full.Start64(int64(len(files)))
		bar.SetWriter(stderr)
	}

	units := make([]pipeline.Work, len(files))
	for i, f := range files {
		units[i] = pipeline.Work{Path: f, Barcode: barcodes[i]}
	}

	start := time.Now()
	stats, perr := pipeline.Run(parent,
		pipeline.Config{Threads: threads, ChunkSize: opts.ChunkSize},
		units,
		agg.Append,
		func(fr pipeline.FileResult) {
			if bar != nil {
				bar.Increment()
			}
			if fr.Err != nil && !errors.Is(fr.Err, context.Canceled) {
				_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", fr.Path, fr.Err)
			}
		},
	)
	if bar != nil {
		bar.Finish()
	}

	// Close before deciding the exit code: the destination must end on
	// a record boundary even after an interrupt.
	if cerr := agg.Close(); cerr != nil && perr == nil {
		perr = cerr
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			_, _ = fmt.Fprintln(stderr, "interrupted")
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	if err := writers.WriteMappingFile(mapPath, files, barcodes); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if !opts.Quiet {
		printSummary(outw, stats, outPath, mapPath, time.Since(start))
	}
	return flushCode(outw, stderr, 0)
}

// flushCode flushes stdout and folds flush failures into the exit code.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

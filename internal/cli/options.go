// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"remux/internal/cliutil"
	"remux/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	InputDir   string
	OutputPath string

	BarcodeLength int
	Threads       int
	ChunkSize     int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: parallel FASTQ remultiplexing

Pools a directory of FASTQ files into one gzip-compressed FASTQ, tags
every read with a per-file nucleotide barcode, and writes the
barcode-to-file table alongside the output.

Version: %s

Usage:
  %s [options] <input-dir> <output.fastq.gz>

Options:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.BarcodeLength, "barcode-length", 8, "length of nucleotide barcodes [8]")
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs, capped at 16) [0]")
	fs.IntVar(&opt.ChunkSize, "chunk-size", 10000, "records read per chunk per file [10000]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress and summary output [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if len(posArgs) != 2 {
		return opt, errors.New("expected exactly two arguments: <input-dir> <output.fastq.gz>")
	}
	opt.InputDir, opt.OutputPath = posArgs[0], posArgs[1]
	if opt.BarcodeLength < 1 {
		return opt, errors.New("--barcode-length must be ≥ 1")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.ChunkSize < 1 {
		return opt, errors.New("--chunk-size must be ≥ 1")
	}
	return opt, nil
}

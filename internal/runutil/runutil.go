// internal/runutil/runutil.go
package runutil

import (
	"runtime"
	"strings"
)

// MaxAutoThreads caps auto-detected workers so a run on a many-core
// host does not oversubscribe the filesystem.
const MaxAutoThreads = 16

// OutputSuffix is the fixed extension of the pooled output stream.
const OutputSuffix = ".fastq.gz"

// MappingSuffix replaces OutputSuffix to derive the companion mapping
// table path.
const MappingSuffix = "_barcode_mapping.txt"

// EffectiveThreads returns the worker count for a run. An explicit
// n > 0 is used as-is; otherwise all CPUs, capped at MaxAutoThreads.
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	if c := runtime.NumCPU(); c < MaxAutoThreads {
		return c
	}
	return MaxAutoThreads
}

// NormalizeOutput ensures the output path carries OutputSuffix.
func NormalizeOutput(path string) string {
	if strings.HasSuffix(path, OutputSuffix) {
		return path
	}
	return path + OutputSuffix
}

// MappingPath derives the mapping-table path from a normalized output
// path.
func MappingPath(out string) string {
	return strings.TrimSuffix(out, OutputSuffix) + MappingSuffix
}

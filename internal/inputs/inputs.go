// internal/inputs/inputs.go
package inputs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Patterns are the FASTQ naming conventions discovered under an input
// directory, in the order they contribute to the file list.
var Patterns = []string{"*.fastq", "*.fastq.gz", "*.fq", "*.fq.gz"}

// Discover lists FASTQ files directly under dir (non-recursive).
// filepath.Glob returns each pattern's matches sorted and the pattern
// order is fixed, so the resulting list — and the barcode mapping
// derived from it — is stable across runs and filesystems.
func Discover(dir string) ([]string, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	var files []string
	for _, pat := range Patterns {
		m, err := filepath.Glob(filepath.Join(dir, pat))
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", pat, err)
		}
		files = append(files, m...)
	}
	return files, nil
}

// TotalSize sums the sizes of files, skipping any that cannot be
// stat'ed; discovery already vouched for their existence.
func TotalSize(files []string) int64 {
	var total int64
	for _, f := range files {
		if st, err := os.Stat(f); err == nil {
			total += st.Size()
		}
	}
	return total
}

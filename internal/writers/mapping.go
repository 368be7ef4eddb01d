// internal/writers/mapping.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MappingHeader is the first row of the barcode mapping table.
const MappingHeader = "Original_File\tBarcode"

// WriteMapping emits the barcode assignment table: one tab-separated
// row per input file (base name, barcode), in input-list order. Row
// order never depends on completion order, so two runs over the same
// inputs produce byte-identical tables.
func WriteMapping(w io.Writer, files, barcodes []string) error {
	if len(files) != len(barcodes) {
		return fmt.Errorf("mapping: %d files but %d barcodes", len(files), len(barcodes))
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, MappingHeader); err != nil {
		return err
	}
	for i, f := range files {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", filepath.Base(f), barcodes[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteMappingFile writes the table to path.
func WriteMappingFile(path string, files, barcodes []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteMapping(f, files, barcodes); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

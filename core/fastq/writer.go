// core/fastq/writer.go
package fastq

import (
	"bufio"
	"io"
)

// Writer serializes records as 4-line FASTQ text.
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 256*1024)}
}

// Write emits one record as exactly four lines.
func (w *Writer) Write(r Record) error {
	for _, line := range [4]string{r.Header, r.Seq, r.Plus, r.Qual} {
		if _, err := w.bw.WriteString(line); err != nil {
			return err
		}
		if err := w.bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll emits a batch in order.
func (w *Writer) WriteAll(rs []Record) error {
	for _, r := range rs {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Flush() error { return w.bw.Flush() }

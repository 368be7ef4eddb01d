// core/fastq/reader.go
package fastq

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader frames 4-line FASTQ records from a plain or gzipped source.
type Reader struct {
	rc  io.ReadCloser
	sc  *bufio.Scanner
	eof bool
}

// Open opens path for record reading. Gzipped inputs are transparently
// decompressed; see openReader for detection.
func Open(path string) (*Reader, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	return NewReader(rc), nil
}

// NewReader frames records from rc. The caller releases rc via Close.
func NewReader(rc io.ReadCloser) *Reader {
	sc := bufio.NewScanner(rc)
	const maxLine = 16 * 1024 * 1024 // allow very long read/quality lines
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{rc: rc, sc: sc}
}

// ReadBatch reads up to n whole records starting at the current
// position. An empty header line or end of input ends the stream; a
// trailing partial record (fewer than 4 readable lines) is discarded,
// never emitted. A short (or empty) result means the source is
// exhausted. Decoder failures surface as an error with no records.
func (r *Reader) ReadBatch(n int) ([]Record, error) {
	if r.eof || n <= 0 {
		return nil, nil
	}
	var recs []Record
	for len(recs) < n {
		header, ok := r.line()
		if !ok || header == "" {
			r.eof = true
			break
		}
		seq, ok1 := r.line()
		plus, ok2 := r.line()
		qual, ok3 := r.line()
		if !ok1 || !ok2 || !ok3 {
			// Trailing partial record: drop it.
			r.eof = true
			break
		}
		recs = append(recs, Record{Header: header, Seq: seq, Plus: plus, Qual: qual})
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("fastq scan: %w", err)
	}
	return recs, nil
}

func (r *Reader) line() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.sc.Text()), true
}

func (r *Reader) Close() error { return r.rc.Close() }

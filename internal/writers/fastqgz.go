// internal/writers/fastqgz.go
package writers

import (
	"os"
	"sync"

	gzip "github.com/klauspost/pgzip"

	"remux-core/fastq"
)

// Aggregator owns the single compressed output destination for a run.
// The file is created empty up front and only ever appended to, one
// whole batch at a time.
type Aggregator struct {
	mu sync.Mutex
	f  *os.File
	gz *gzip.Writer
	fw *fastq.Writer
	n  int64
}

func NewAggregator(path string) (*Aggregator, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	gz := gzip.NewWriter(f)
	return &Aggregator{f: f, gz: gz, fw: fastq.NewWriter(gz)}, nil
}

// Append writes one batch of records, in batch order, whole records
// only. Concurrent calls are serialized; mid-record interleaving cannot
// occur.
func (a *Aggregator) Append(batch []fastq.Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.fw.WriteAll(batch); err != nil {
		return err
	}
	// Hand each batch to the gzip stream whole, so an aborted run still
	// ends on a record boundary once the stream is closed.
	if err := a.fw.Flush(); err != nil {
		return err
	}
	a.n += int64(len(batch))
	return nil
}

// Records returns how many records have been appended so far.
func (a *Aggregator) Records() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.n
}

// Close flushes buffered records and finalizes the gzip stream.
func (a *Aggregator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.fw.Flush(); err != nil {
		_ = a.gz.Close()
		_ = a.f.Close()
		return err
	}
	if err := a.gz.Close(); err != nil {
		_ = a.f.Close()
		return err
	}
	return a.f.Close()
}

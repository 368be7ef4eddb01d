// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"remux-core/fastq"
)

// Config controls the tagging pipeline.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	ChunkSize int // records read per batch; bounds per-worker memory
}

// Work is the immutable unit for one input file.
type Work struct {
	Path    string
	Barcode string
}

// FileResult reports one finished file. Records counts the tagged
// records handed to the sink for that file.
type FileResult struct {
	Path    string
	Records int
	Err     error
}

// Stats summarizes a run.
type Stats struct {
	Files   int
	Failed  int
	Records int64
}

// Sink receives tagged batches. It is called from a single goroutine,
// one batch at a time, in completion order.
type Sink func([]fastq.Record) error

type msg struct {
	batch []fastq.Record
	done  *FileResult // non-nil exactly once per file, after its last batch
}

// Run tags every unit's records and hands batches to sink as workers
// produce them. Every file is attempted exactly once; a failure on one
// file never blocks or cancels another; a sink error is fatal and
// cancels the run. onFile (optional) fires serially once per file.
func Run(parent context.Context, cfg Config, units []Work, sink Sink, onFile func(FileResult)) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = 1
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan Work)
	results := make(chan msg, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case u, ok := <-jobs:
					if !ok {
						return
					}
					res := tagFile(ctx, u, cfg.ChunkSize, results)
					select {
					case results <- msg{done: &res}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: sole caller of sink, serializes batches in arrival order.
	var (
		stats Stats
		serr  error
		cwg   sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for m := range results {
			if m.done != nil {
				stats.Files++
				stats.Records += int64(m.done.Records)
				if m.done.Err != nil {
					stats.Failed++
				}
				if onFile != nil {
					onFile(*m.done)
				}
				continue
			}
			if serr != nil {
				continue // draining after a fatal sink error
			}
			if err := sink(m.batch); err != nil {
				serr = err
				cancel()
			}
		}
	}()

	// Feed in file-list order; completion order is up to the workers.
feed:
	for _, u := range units {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- u:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if serr != nil {
		return stats, serr
	}
	if err := parent.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// tagFile reads u.Path chunk by chunk until exhaustion, tagging each
// chunk and emitting it immediately so memory stays bounded by the
// chunk size rather than the file size. Open/read failures end this
// file only.
func tagFile(ctx context.Context, u Work, chunkSize int, out chan<- msg) FileResult {
	res := FileResult{Path: u.Path}

	r, err := fastq.Open(u.Path)
	if err != nil {
		res.Err = err
		return res
	}
	defer func() { _ = r.Close() }()

	tagger := fastq.NewTagger(u.Barcode)
	for {
		batch, err := r.ReadBatch(chunkSize)
		if err != nil {
			res.Err = err
			return res
		}
		if len(batch) > 0 {
			tagger.TagAll(batch)
			select {
			case out <- msg{batch: batch}:
				res.Records += len(batch)
			case <-ctx.Done():
				res.Err = ctx.Err()
				return res
			}
		}
		if len(batch) < chunkSize {
			return res
		}
	}
}

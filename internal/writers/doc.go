// Package writers owns the run's two output artifacts: the pooled
// gzip-compressed FASTQ stream and the barcode mapping table.
//
// Design:
//   - Aggregator is the only entity allowed to touch the output stream;
//     batches are appended under its lock and never interleaved
//     mid-record.
//   - The mapping table is written in input-list order, decoupled from
//     the nondeterministic completion order of the stream.
package writers

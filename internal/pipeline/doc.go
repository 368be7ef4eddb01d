// Package pipeline fans per-file tagging work across a bounded worker
// pool and funnels every tagged batch through a single collector
// goroutine.
//
// Design:
//   - Workers share no mutable state; each owns its file handle and
//     chunk buffers for the file it is processing.
//   - The sink is only ever called from the collector, so the output
//     stream sees batches one at a time, in arrival order.
//   - Per-file errors are data (FileResult.Err), not control flow; only
//     sink errors and context cancellation abort the run.
package pipeline

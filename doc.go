// Package intervals is a small toolkit for splitting closed integer ranges
// into contiguous, near-equal pieces.
//
// 🚀 What is in the module?
//
//	interval/                Partition, PartitionFloat, Sequence (lazy,
//	                         restartable), Interval, Distribution options
//	cmd/partition-interval/  command-line front end (cobra + zap)
//	examples/                runnable walkthrough: sharding a block range
//
// ✨ Why use it?
//
//   - Exact: sizes differ by at most one and the pieces cover the input
//     with no gaps or overlaps, over the whole int64 domain.
//   - Lazy: sub-intervals are computed on demand; a Sequence can be ranged
//     over any number of times.
//   - Pure Go: no cgo, no global state, no goroutines.
//
// Quick example:
//
//	seq, _ := interval.Partition(interval.Interval{Start: 0, End: 99}, 4)
//	for sub := range seq.All() {
//		fmt.Println(sub) // [0, 24] [25, 49] [50, 74] [75, 99]
//	}
//
//	go get github.com/katalvlaran/intervals/interval
package intervals

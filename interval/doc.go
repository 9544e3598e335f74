// Package interval splits a closed integer interval into k contiguous
// sub-intervals whose sizes differ by at most one.
//
// What:
//
//   - Partition validates [start, end] and k eagerly and returns a Sequence.
//   - Sequence.All yields the sub-intervals lazily, in ascending order.
//     Every call to the returned iterator starts a fresh, private cursor,
//     so one Sequence can be ranged over any number of times.
//   - Sequence.At gives random access to the i-th sub-interval.
//   - PartitionFloat accepts float64 inputs and rejects anything that is
//     not a safe integer (NaN, ±Inf, fractional, |x| > 2^53-1).
//
// Why:
//
//   - Sharding a key or ID range across a fixed set of workers.
//   - Splitting a block/offset range into batches of near-equal size.
//
// Guarantees (for every accepted input):
//
//   - exactly k sub-intervals, each with Start ≤ End;
//   - the first starts at start, the last ends at end, and
//     End_i + 1 == Start_{i+1} in between;
//   - every size is floor(n/k) or ceil(n/k), n = end-start+1.
//
// Distribution:
//
//   - Proportional (default): boundary i sits at floor(i·n/k). Extra units
//     are spread across the range, e.g. [3, 52] / 4 → sizes 12,13,12,13.
//   - FrontLoaded: the first n mod k sub-intervals take the extra unit,
//     e.g. [0, 9] / 3 → [0,3] [4,6] [7,9].
//
// Complexity:
//
//   - Partition: O(1) time and memory.
//   - All: O(1) per element, no allocation beyond the cursor.
//   - At: O(1) (one 128-bit multiply and divide).
//
// Errors:
//
//   - ErrInvalidArgument: start > end, partitions ≤ 0, partitions larger
//     than the interval, or a non-integer value in PartitionFloat.
//   - ErrIndexOutOfRange: At called with i outside [0, k).
//
// Arithmetic covers the whole int64 domain without overflow, including
// [math.MinInt64, math.MaxInt64].
package interval

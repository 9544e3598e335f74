package interval

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
	"slices"
)

// maxSafeInteger is the largest integer M such that every integer in
// [-M, M] is exactly representable as a float64.
const maxSafeInteger = 1<<53 - 1

// Sequence is the lazily evaluated result of Partition. It is an immutable
// value: copying it is cheap and every traversal keeps its own cursor.
// The zero Sequence is empty.
type Sequence struct {
	whole Interval
	dist  Distribution

	k        uint64 // number of sub-intervals
	nHi, nLo uint64 // n = whole.Size() as a 65-bit value (nHi ∈ {0, 1})
	q, r     uint64 // n = q·k + r, both modulo 2^64
}

// Partition divides the closed interval iv into partitions contiguous,
// non-overlapping sub-intervals whose sizes differ by at most one.
//
// Validation happens here, before anything is produced:
//   - iv.Start ≤ iv.End,
//   - 0 < partitions ≤ iv.Size().
//
// On failure the returned error wraps ErrInvalidArgument and names the
// offending interval and count.
//
// Algorithm (Proportional):
//
//	n = end - start + 1, o_0 = 0, o_{i+1} = o_i + n
//	lo_i = start + floor(o_i / k)
//	hi_i = start + floor((o_i + n) / k) - 1
//
// floor(o_i / k) and o_i mod k are carried incrementally as (Q, R), so no
// intermediate value exceeds 64 bits.
//
// Example:
//
//	seq, err := interval.Partition(interval.Interval{Start: 0, End: 99}, 4)
//	for sub := range seq.All() {
//		fmt.Println(sub) // [0, 24] [25, 49] [50, 74] [75, 99]
//	}
func Partition(iv Interval, partitions int, opts ...Option) (Sequence, error) {
	if !iv.Valid() || partitions <= 0 {
		return Sequence{}, invalidArgument(iv.Start, iv.End, partitions)
	}

	// n may be 2^64 for the full int64 range.
	nLo, nHi := bits.Add64(iv.Span(), 1, 0)
	k := uint64(partitions)
	if nHi == 0 && nLo < k {
		return Sequence{}, invalidArgument(iv.Start, iv.End, partitions)
	}

	o := gatherOptions(opts...)
	s := Sequence{whole: iv, dist: o.distribution, k: k, nHi: nHi, nLo: nLo}
	if nHi == 0 || k == 1 {
		// k == 1 with n == 2^64 leaves q == 0, which is n modulo 2^64.
		s.q, s.r = nLo/k, nLo%k
	} else {
		s.q, s.r = bits.Div64(nHi, nLo, k)
	}

	return s, nil
}

// PartitionFloat is Partition for callers holding float64 values, e.g.
// decoded JSON numbers or command-line input. start, end and partitions
// must all be safe integers (|x| ≤ 2^53-1, no fractional part, not NaN
// or ±Inf); anything else fails with ErrInvalidArgument.
func PartitionFloat(start, end, partitions float64, opts ...Option) (Sequence, error) {
	if !isSafeInteger(start) || !isSafeInteger(end) || start > end ||
		!isSafeInteger(partitions) || partitions <= 0 || partitions > math.MaxInt {
		return Sequence{}, invalidArgument(start, end, partitions)
	}

	return Partition(Interval{Start: int64(start), End: int64(end)}, int(partitions), opts...)
}

func isSafeInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Abs(f) <= maxSafeInteger && math.Trunc(f) == f
}

func invalidArgument(start, end, partitions any) error {
	return fmt.Errorf("%w: expected ints: start <= end, 0 < partitions <= end-start+1; got: [%v, %v], %v",
		ErrInvalidArgument, start, end, partitions)
}

// Interval returns the interval that was partitioned.
func (s Sequence) Interval() Interval { return s.whole }

// Distribution returns the remainder policy in effect.
func (s Sequence) Distribution() Distribution { return s.dist }

// Len returns the number of sub-intervals, k.
func (s Sequence) Len() int { return int(s.k) }

// All returns an iterator over the sub-intervals in ascending order.
// Each call of the iterator walks the sequence from the beginning with
// its own cursor; breaking out of a range loop has no side effects.
func (s Sequence) All() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		c := s.cursor()
		for i := uint64(0); i < s.k; i++ {
			if !yield(c.next()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the sub-intervals in descending order.
func (s Sequence) Backward() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		for i := s.k; i > 0; i-- {
			if !yield(s.at(i - 1)) {
				return
			}
		}
	}
}

// At returns the i-th sub-interval (0-based) without walking the sequence.
// It fails with ErrIndexOutOfRange when i is outside [0, Len()).
func (s Sequence) At(i int) (Interval, error) {
	if i < 0 || uint64(i) >= s.k {
		return Interval{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, s.k)
	}
	return s.at(uint64(i)), nil
}

// Collect materializes the whole sequence into a slice.
func (s Sequence) Collect() []Interval {
	return slices.Collect(s.All())
}

func (s Sequence) at(i uint64) Interval {
	base := uint64(s.whole.Start)
	return Interval{
		Start: int64(base + s.offset(i)),
		End:   int64(base + s.offset(i+1) - 1),
	}
}

// offset returns the distance from whole.Start to the first element of
// sub-interval i, for 0 ≤ i ≤ k, modulo 2^64.
func (s Sequence) offset(i uint64) uint64 {
	if i == s.k {
		return s.nLo
	}
	if s.dist == FrontLoaded {
		return i*s.q + min(i, s.r)
	}

	// floor(i·n / k); i < k keeps the high word below k.
	hi, lo := bits.Mul64(i, s.nLo)
	hi += i * s.nHi
	quo, _ := bits.Div64(hi, lo, s.k)
	return quo
}

// cursor is the private state of one traversal.
type cursor struct {
	base   uint64 // whole.Start reinterpreted as uint64
	k      uint64
	q, r   uint64
	dist   Distribution
	i      uint64 // index of the next sub-interval
	offset uint64 // Q = floor(o_i / k)
	rem    uint64 // R = o_i mod k (Proportional only)
}

func (s Sequence) cursor() *cursor {
	return &cursor{base: uint64(s.whole.Start), k: s.k, q: s.q, r: s.r, dist: s.dist}
}

// next yields sub-interval c.i and advances. Bounds are computed modulo
// 2^64; every true bound fits in int64, so the conversion is exact.
func (c *cursor) next() Interval {
	lo := c.base + c.offset
	c.offset += c.q
	switch c.dist {
	case FrontLoaded:
		if c.i < c.r {
			c.offset++
		}
	default:
		// R < k and r < k, and k ≤ MaxInt64, so the sum cannot overflow.
		c.rem += c.r
		if c.rem >= c.k {
			c.offset++
			c.rem -= c.k
		}
	}
	c.i++

	return Interval{Start: int64(lo), End: int64(c.base + c.offset - 1)}
}

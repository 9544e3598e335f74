package interval

import (
	"fmt"
	"strings"
)

// Interval is the closed integer range [Start, End].
type Interval struct {
	Start int64 // inclusive
	End   int64 // inclusive
}

// Valid reports whether Start ≤ End.
func (iv Interval) Valid() bool { return iv.Start <= iv.End }

// Span returns End-Start as an unsigned value. It never overflows for a
// valid interval, including [math.MinInt64, math.MaxInt64].
func (iv Interval) Span() uint64 { return uint64(iv.End) - uint64(iv.Start) }

// Size returns the number of integers in the interval, Span()+1.
// The full int64 range holds 2^64 integers and wraps to 0.
func (iv Interval) Size() uint64 { return iv.Span() + 1 }

// Contains reports whether x lies in [Start, End].
func (iv Interval) Contains(x int64) bool { return iv.Start <= x && x <= iv.End }

// String renders the interval as "[start, end]".
func (iv Interval) String() string { return fmt.Sprintf("[%d, %d]", iv.Start, iv.End) }

// Distribution decides which sub-intervals receive the n mod k extra
// units when the interval size is not a multiple of k.
type Distribution int

const (
	// Proportional places boundary i at floor(i·n/k) from the start.
	Proportional Distribution = iota

	// FrontLoaded gives the extra units to the first n mod k sub-intervals.
	FrontLoaded
)

var distributionNames = [...]string{
	Proportional: "proportional",
	FrontLoaded:  "front-loaded",
}

func (d Distribution) valid() bool { return d >= Proportional && d <= FrontLoaded }

// String returns the canonical name used by ParseDistribution.
func (d Distribution) String() string {
	if !d.valid() {
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
	return distributionNames[d]
}

// ParseDistribution maps a name ("proportional", "front-loaded") to its
// Distribution. Matching is case-insensitive.
func ParseDistribution(name string) (Distribution, error) {
	for d, n := range distributionNames {
		if strings.EqualFold(name, n) {
			return Distribution(d), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown distribution %q", ErrInvalidArgument, name)
}

// Command partition-interval prints the sub-intervals of a closed integer
// interval split into a given number of near-equal parts.
//
// Usage:
//
//	partition-interval [flags] [--] START END PARTITIONS
//
// Negative bounds must follow "--" so they are not read as flags:
//
//	partition-interval -- -31 89 5
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

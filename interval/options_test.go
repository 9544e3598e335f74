package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intervals/interval"
)

// TestOptions_Default checks that no options means DefaultDistribution.
func TestOptions_Default(t *testing.T) {
	seq, err := interval.Partition(iv(0, 9), 3)
	require.NoError(t, err)
	assert.Equal(t, interval.DefaultDistribution, seq.Distribution())

	seq, err = interval.Partition(iv(0, 9), 3, nil)
	require.NoError(t, err, "nil options are skipped")
	assert.Equal(t, interval.Proportional, seq.Distribution())
}

// TestOptions_LastWins verifies that later options override earlier ones.
func TestOptions_LastWins(t *testing.T) {
	seq, err := interval.Partition(iv(0, 9), 3,
		interval.WithFrontLoaded(),
		interval.WithDistribution(interval.Proportional),
	)
	require.NoError(t, err)
	assert.Equal(t, interval.Proportional, seq.Distribution())
}

// TestOptions_PanicOnUnknownDistribution ensures nonsensical option values
// are caught at construction time.
func TestOptions_PanicOnUnknownDistribution(t *testing.T) {
	assert.Panics(t, func() { interval.WithDistribution(interval.Distribution(-1)) })
	assert.Panics(t, func() { interval.WithDistribution(interval.Distribution(2)) })
}

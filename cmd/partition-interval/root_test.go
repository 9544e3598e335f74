package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/intervals/interval"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the root command with args and returns stdout and the
// observed log entries.
func execute(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	cmd := newRootCmdWith(&rootOptions{logger: zap.New(core)})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), logs, err
}

func TestRoot_PrintsPartition(t *testing.T) {
	out, logs, err := execute(t, "0", "99", "4")
	require.NoError(t, err)
	assert.Equal(t, "[0, 24]\n[25, 49]\n[50, 74]\n[75, 99]\n", out)
	assert.Equal(t, 1, logs.FilterMessage("partitioning").Len())
}

func TestRoot_NegativeBoundsAfterSeparator(t *testing.T) {
	out, _, err := execute(t, "--", "-31", "89", "5")
	require.NoError(t, err)
	assert.Equal(t, "[-31, -8]\n[-7, 16]\n[17, 40]\n[41, 64]\n[65, 89]\n", out)
}

func TestRoot_FrontLoaded(t *testing.T) {
	out, _, err := execute(t, "--distribution", "front-loaded", "0", "9", "3")
	require.NoError(t, err)
	assert.Equal(t, "[0, 3]\n[4, 6]\n[7, 9]\n", out)
}

func TestRoot_Rejections(t *testing.T) {
	tests := []struct {
		name string
		args []string
		log  string
	}{
		{"fractional partitions", []string{"0", "10", "2.5"}, "partition rejected"},
		{"inverted", []string{"10", "0", "2"}, "partition rejected"},
		{"zero partitions", []string{"0", "10", "0"}, "partition rejected"},
		{"not a number", []string{"0", "ten", "2"}, "invalid argument"},
		{"unknown distribution", []string{"-d", "balanced", "0", "10", "2"}, "invalid distribution"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, logs, err := execute(t, tt.args...)
			require.ErrorIs(t, err, interval.ErrInvalidArgument)
			assert.Empty(t, out, "nothing is printed on failure")
			assert.Equal(t, 1, logs.FilterMessage(tt.log).Len())
		})
	}
}

func TestRoot_WrongArgCount(t *testing.T) {
	_, _, err := execute(t, "0", "10")
	assert.Error(t, err)
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/intervals/interval"
)

// rootOptions carries flag values and the logger for one command instance.
type rootOptions struct {
	verbose      bool
	distribution string

	// logger is built in PersistentPreRunE unless already set (tests).
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{})
}

func newRootCmdWith(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partition-interval [flags] [--] START END PARTITIONS",
		Short: "Split a closed integer interval into near-equal sub-intervals",
		Long: `Divides [START, END] into PARTITIONS contiguous, non-overlapping closed
sub-intervals whose sizes differ by at most one, and prints one per line.

All three arguments must be safe integers (|x| <= 2^53-1). Put negative
bounds after "--":

  partition-interval -- -31 89 5

Distributions:
  proportional  boundary i at floor(i*n/k) (default)
  front-loaded  the first n mod k sub-intervals take the extra unit`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPartition(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVarP(&opts.distribution, "distribution", "d", interval.DefaultDistribution.String(),
		"remainder policy: proportional or front-loaded")

	return cmd
}

func runPartition(cmd *cobra.Command, args []string, opts *rootOptions) error {
	log := opts.logger

	var nums [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			err = fmt.Errorf("%w: %q is not a number", interval.ErrInvalidArgument, arg)
			log.Error("invalid argument", zap.Int("position", i), zap.Error(err))
			return err
		}
		nums[i] = v
	}

	dist, err := interval.ParseDistribution(opts.distribution)
	if err != nil {
		log.Error("invalid distribution", zap.String("distribution", opts.distribution), zap.Error(err))
		return err
	}

	seq, err := interval.PartitionFloat(nums[0], nums[1], nums[2], interval.WithDistribution(dist))
	if err != nil {
		log.Error("partition rejected", zap.Error(err))
		return err
	}
	log.Debug("partitioning",
		zap.Stringer("interval", seq.Interval()),
		zap.Int("partitions", seq.Len()),
		zap.Stringer("distribution", seq.Distribution()),
	)

	out := cmd.OutOrStdout()
	for sub := range seq.All() {
		if _, err := fmt.Fprintln(out, sub); err != nil {
			return fmt.Errorf("write %v: %w", sub, err)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/randomizedcoder/queue-latency-bench/internal/bench"
	"github.com/randomizedcoder/queue-latency-bench/internal/variant"
)

const usage = "Usage: queuebench num_values"

type options struct {
	variants  []string
	verify    bool
	verbosity string
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&o.variants, "variants", variant.Default,
		fmt.Sprintf("Queues to measure, in order. One or more of %v", variant.Names()))
	fs.BoolVar(&o.verify, "verify", false, "Fail if values do not come out in the order they went in")
	fs.StringVarP(&o.verbosity, "verbosity", "v", logrus.WarnLevel.String(),
		"Log level (debug, info, warn, error, fatal, panic)")
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "queuebench [num_values]",
		Short:         "Measure enqueue/dequeue latency of FIFO queue implementations",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setUpLogs(errOut, opts.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := fmt.Fprintln(out, usage)
				return err
			}
			return run(out, opts, args[0])
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	opts.addFlags(cmd.Flags())

	return cmd
}

func setUpLogs(errOut io.Writer, level string) error {
	logrus.SetOutput(errOut)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logrus.SetLevel(lvl)
	return nil
}

func run(out io.Writer, opts *options, arg string) error {
	n, err := parseCount(arg)
	if err != nil {
		return err
	}

	variants, err := variant.Lookup(opts.variants)
	if err != nil {
		return err
	}

	logrus.Infof("measuring %d queues with %s items each", len(variants), humanize.Comma(int64(n)))

	runner := &bench.Runner{Out: out, Verify: opts.verify}
	for _, v := range variants {
		// Each queue lives for exactly one run.
		if err := runner.Run(v.New(n), n, v.Label); err != nil {
			return err
		}
	}
	return nil
}

// parseCount parses a non-negative decimal item count that fits in an int.
func parseCount(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("parsing num_values: %w", err)
	}
	return int(n), nil
}

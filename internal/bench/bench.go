// Package bench drives the fill-then-drain workload against a queue and
// times every individual operation.
//
// One run enqueues 0..n-1 in ascending order, then dequeues until the queue
// reports empty. Each call is bracketed by two clock reads and recorded in
// whole microseconds, giving exactly 2n samples. The total run time is
// measured separately from first to last clock read, so it also covers the
// overhead the per-operation timers miss.
package bench

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/randomizedcoder/queue-latency-bench/internal/queue"
	"github.com/randomizedcoder/queue-latency-bench/internal/stats"
)

// ErrOrderViolation is returned by a verifying Runner when the values
// dequeued differ from the values enqueued.
var ErrOrderViolation = errors.New("bench: dequeued values do not match enqueue order")

// Clock supplies timestamps to the runner.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// WallClock reads the monotonic wall clock via time.Now.
var WallClock Clock = wallClock{}

// Result holds the raw measurements of one run.
type Result struct {
	Label string

	// Samples holds one duration per operation in microseconds:
	// the n enqueues first, then the dequeues.
	Samples []int64

	// Total is the whole run in microseconds.
	Total int64

	// Dequeued counts the dequeue calls that returned a value.
	Dequeued int
}

// Summary reduces the result to its statistics.
func (r Result) Summary() stats.Summary {
	return stats.Summarize(r.Samples, r.Total)
}

// Line renders the report line for the result.
func (r Result) Line() string {
	return stats.Format(r.Label, r.Summary())
}

// Runner measures queues and writes one report line per run.
//
// The zero value is not usable: Out must be set. A nil Clock means WallClock.
type Runner struct {
	Out   io.Writer
	Clock Clock

	// Verify checks that the values come out in the order they went in.
	Verify bool
}

// Run measures q with n items and writes the report line to r.Out before
// returning, so consecutive runs print in the order they were started.
func (r *Runner) Run(q queue.Queue[int], n int, label string) error {
	res, err := r.Measure(q, n, label)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"label":   label,
		"items":   humanize.Comma(int64(n)),
		"samples": humanize.Comma(int64(len(res.Samples))),
		"total":   time.Duration(res.Total) * time.Microsecond,
	}).Debug("benchmark run finished")

	if _, err := fmt.Fprintln(r.Out, res.Line()); err != nil {
		return fmt.Errorf("writing report for %q: %w", label, err)
	}
	return nil
}

// Measure drives the workload against q and returns the raw samples.
// q must be empty. A negative n is treated as 0: no enqueues are timed and
// the result has no samples.
func (r *Runner) Measure(q queue.Queue[int], n int, label string) (Result, error) {
	clock := r.Clock
	if clock == nil {
		clock = WallClock
	}
	if n < 0 {
		n = 0
	}

	samples := make([]int64, 0, 2*n)

	start := clock.Now()
	for i := 0; i < n; i++ {
		opStart := clock.Now()
		q.Enqueue(i)
		samples = append(samples, micros(clock.Now().Sub(opStart)))
	}

	var dequeued, mismatched int
	for !q.IsEmpty() {
		opStart := clock.Now()
		v, ok := q.Dequeue()
		samples = append(samples, micros(clock.Now().Sub(opStart)))

		if ok {
			if v != dequeued {
				mismatched++
			}
			dequeued++
		}
	}
	total := micros(clock.Now().Sub(start))

	res := Result{
		Label:    label,
		Samples:  samples,
		Total:    total,
		Dequeued: dequeued,
	}

	if r.Verify && (mismatched > 0 || dequeued != n) {
		return res, fmt.Errorf("%s: %d of %d values out of order, %d dequeued: %w",
			label, mismatched, n, dequeued, ErrOrderViolation)
	}
	return res, nil
}

// micros truncates d to whole microseconds.
func micros(d time.Duration) int64 {
	return d.Microseconds()
}

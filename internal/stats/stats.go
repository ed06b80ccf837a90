// Package stats reduces per-operation timing samples to the summary line the
// harness prints for each queue.
//
// Samples are whole microseconds. Every reported value is converted to
// seconds by dividing by 1,000,000.
package stats

import (
	"fmt"
	"slices"
	"strconv"
)

// NotAvailable is printed for statistics that have no samples to draw from.
const NotAvailable = "N/A"

const microsPerSecond = 1_000_000.0

// Summary holds the statistics of one benchmark run, in seconds.
//
// When Empty is set, Max, Median and Mean are zero and carry no meaning;
// Format prints NotAvailable for them.
type Summary struct {
	Total  float64
	Max    float64
	Median float64
	Mean   float64
	Count  int
	Empty  bool
}

// Summarize computes the statistics for samples and a separately measured
// total, both in microseconds. samples is not modified.
func Summarize(samples []int64, total int64) Summary {
	s := Summary{
		Total: Seconds(total),
		Count: len(samples),
	}
	if len(samples) == 0 {
		s.Empty = true
		return s
	}

	s.Max = Seconds(Max(samples))
	s.Median = Seconds(Median(samples))
	s.Mean = Mean(samples)
	return s
}

// Seconds converts microseconds to fractional seconds.
func Seconds(micros int64) float64 {
	return float64(micros) / microsPerSecond
}

// Max returns the largest sample. It panics on an empty slice.
func Max(samples []int64) int64 {
	return slices.Max(samples)
}

// Median returns the element at index len/2 of the sorted samples.
// For an even count this is the upper of the two middle values; the two are
// never averaged. It panics on an empty slice.
func Median(samples []int64) int64 {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}

// Mean returns the arithmetic mean of samples in seconds, or 0 for an empty
// slice.
func Mean(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		sum += Seconds(v)
	}
	return sum / float64(len(samples))
}

// Format renders the report line for one run.
func Format(label string, s Summary) string {
	hi, mid, avg := NotAvailable, NotAvailable, NotAvailable
	if !s.Empty {
		hi = formatFloat(s.Max)
		mid = formatFloat(s.Median)
		avg = formatFloat(s.Mean)
	}
	return fmt.Sprintf("For %s: total time: %s s; max single op: %s s; median single op: %s; mean single op: %s",
		label, formatFloat(s.Total), hi, mid, avg)
}

// formatFloat prints the shortest decimal that round-trips, never using an
// exponent.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

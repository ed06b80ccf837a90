// Command queuebench measures per-operation latency of FIFO queue
// implementations.
//
// It enqueues the integers 0..n-1 into each queue, dequeues them all again,
// and prints one line per queue with the total run time and the max, median
// and mean single-operation times, all in seconds.
//
// Usage:
//
//	go run ./cmd/queuebench 1000000
//	go run ./cmd/queuebench --variants deque,channel --verify -v debug 1000
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// Package variant names the queue implementations the harness can measure.
package variant

import (
	"errors"
	"fmt"

	"github.com/randomizedcoder/queue-latency-bench/internal/queue"
)

// ErrUnknownVariant is returned by Lookup for a name that is not registered.
var ErrUnknownVariant = errors.New("unknown queue variant")

// Variant builds a fresh, empty queue for a run of n items.
type Variant struct {
	Name  string
	Label string
	New   func(n int) queue.Queue[int]
}

// Labels are padded to a common width so the report columns line up.
var all = []Variant{
	{
		Name:  "deque",
		Label: "VecDeque         ",
		New:   func(int) queue.Queue[int] { return queue.NewDeque[int]() },
	},
	{
		Name:  "list",
		Label: "LinkedList       ",
		New:   func(int) queue.Queue[int] { return queue.NewLinkedList[int]() },
	},
	{
		Name:  "deque-reserved",
		Label: "VecDeque Reserved",
		New:   func(n int) queue.Queue[int] { return queue.NewDequeWithCapacity[int](n) },
	},
	{
		Name:  "channel",
		Label: "Channel          ",
		New:   func(n int) queue.Queue[int] { return queue.NewChannel[int](n) },
	},
}

// Default is the run order used when no variants are selected.
var Default = []string{"deque", "list", "deque-reserved"}

// All returns every registered variant in registration order.
func All() []Variant {
	return append([]Variant(nil), all...)
}

// Lookup resolves names to variants, keeping the given order.
func Lookup(names []string) ([]Variant, error) {
	out := make([]Variant, 0, len(names))
	for _, name := range names {
		v, ok := find(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownVariant, name)
		}
		out = append(out, v)
	}
	return out, nil
}

// Names returns the names of every registered variant.
func Names() []string {
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = v.Name
	}
	return names
}

func find(name string) (Variant, bool) {
	for _, v := range all {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

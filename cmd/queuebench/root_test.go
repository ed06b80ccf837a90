package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/randomizedcoder/queue-latency-bench/internal/variant"
)

var lineRE = regexp.MustCompile(`^For (.+): total time: ([0-9.]+) s; max single op: ([0-9.]+|N/A) s; median single op: ([0-9.]+|N/A); mean single op: ([0-9.]+|N/A)$`)

func execute(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func reportLines(c *qt.C, out string) [][]string {
	var matches [][]string
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		m := lineRE.FindStringSubmatch(line)
		c.Assert(m, qt.HasLen, 6, qt.Commentf("line %q", line))
		matches = append(matches, m)
	}
	return matches
}

func TestNoArgsPrintsUsage(t *testing.T) {
	c := qt.New(t)

	out, _, err := execute()
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Equals, usage+"\n")
}

func TestDefaultRun(t *testing.T) {
	c := qt.New(t)

	out, _, err := execute("1000")
	c.Assert(err, qt.IsNil)

	lines := reportLines(c, out)
	c.Assert(lines, qt.HasLen, 3)
	c.Assert(lines[0][1], qt.Equals, "VecDeque         ")
	c.Assert(lines[1][1], qt.Equals, "LinkedList       ")
	c.Assert(lines[2][1], qt.Equals, "VecDeque Reserved")
	for _, m := range lines {
		for _, v := range m[2:] {
			c.Assert(v, qt.Not(qt.Equals), "N/A")
		}
	}
}

func TestRepeatedRunsShareStructure(t *testing.T) {
	c := qt.New(t)

	first, _, err := execute("200")
	c.Assert(err, qt.IsNil)
	second, _, err := execute("200")
	c.Assert(err, qt.IsNil)

	a, b := reportLines(c, first), reportLines(c, second)
	c.Assert(a, qt.HasLen, len(b))
	for i := range a {
		c.Assert(a[i][1], qt.Equals, b[i][1])
	}
}

func TestZeroItems(t *testing.T) {
	c := qt.New(t)

	out, _, err := execute("0")
	c.Assert(err, qt.IsNil)

	lines := reportLines(c, out)
	c.Assert(lines, qt.HasLen, 3)
	for _, m := range lines {
		c.Assert(m[3:], qt.DeepEquals, []string{"N/A", "N/A", "N/A"})
	}
}

func TestInvalidCount(t *testing.T) {
	tests := []struct {
		description string
		args        []string
		expected    string
	}{
		{"not a number", []string{"abc"}, `parsing num_values: strconv.ParseUint: parsing "abc": invalid syntax`},
		{"negative", []string{"--", "-5"}, `parsing num_values: strconv.ParseUint: parsing "-5": invalid syntax`},
		{"fraction", []string{"1.5"}, `parsing num_values: .*invalid syntax`},
		{"too large", []string{"99999999999999999999999"}, `parsing num_values: .*value out of range`},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			c := qt.New(t)

			out, _, err := execute(test.args...)
			c.Assert(err, qt.ErrorMatches, test.expected)
			c.Assert(out, qt.Equals, "")
		})
	}
}

func TestTooManyArgs(t *testing.T) {
	_, _, err := execute("1", "2")
	qt.New(t).Assert(err, qt.Not(qt.IsNil))
}

func TestSelectedVariants(t *testing.T) {
	c := qt.New(t)

	out, _, err := execute("--variants", "channel,deque", "--verify", "50")
	c.Assert(err, qt.IsNil)

	lines := reportLines(c, out)
	c.Assert(lines, qt.HasLen, 2)
	c.Assert(lines[0][1], qt.Equals, "Channel          ")
	c.Assert(lines[1][1], qt.Equals, "VecDeque         ")
}

func TestUnknownVariant(t *testing.T) {
	c := qt.New(t)

	out, _, err := execute("--variants", "heap", "10")
	c.Assert(err, qt.ErrorIs, variant.ErrUnknownVariant)
	c.Assert(out, qt.Equals, "")
}

func TestVerbosity(t *testing.T) {
	c := qt.New(t)

	_, logs, err := execute("-v", "debug", "10")
	c.Assert(err, qt.IsNil)
	c.Assert(logs, qt.Contains, "benchmark run finished")

	_, _, err = execute("-v", "loud", "10")
	c.Assert(err, qt.ErrorMatches, `parsing log level: .*`)
}

// Package report turns a dijkstra.Result into the per-destination text
// lines written to the output file:
//
//	<name> is unreachable
//	(Cost is: <cost>) <v1> to <v2> to ... to <vk>
//
// Formatting is separate from I/O: Line and Entry are pure, Write streams
// lines to any io.Writer.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/izanahmed/graphing-exponents/dijkstra"
)

const (
	pathSeparator   = " to "
	unreachableTail = " is unreachable"
	costPrefix      = "(Cost is: "
	costSuffix      = ") "
)

// Entry is the programmatic form of one report line.
type Entry struct {
	Destination string
	Reachable   bool
	Cost        float64  // dijkstra.Infinity when unreachable
	Path        []string // source first; nil when unreachable
}

// String renders the entry as a report line.
func (e Entry) String() string {
	if !e.Reachable {
		return e.Destination + unreachableTail
	}

	var b strings.Builder
	b.WriteString(costPrefix)
	b.WriteString(FormatCost(e.Cost))
	b.WriteString(costSuffix)
	b.WriteString(strings.Join(e.Path, pathSeparator))

	return b.String()
}

// NewEntry builds the entry for dest from a finished run.
// Returns an error wrapping dijkstra.ErrVertexNotFound if dest is not a
// vertex of the graph.
func NewEntry(res *dijkstra.Result, dest string) (Entry, error) {
	cost, err := res.Distance(dest)
	if err != nil {
		return Entry{}, fmt.Errorf("report: destination: %w", err)
	}
	if !res.Reachable(dest) {
		return Entry{Destination: dest, Cost: cost}, nil
	}
	path, err := res.Path(dest)
	if err != nil {
		return Entry{}, fmt.Errorf("report: %w", err)
	}

	return Entry{Destination: dest, Reachable: true, Cost: cost, Path: path}, nil
}

// Line returns the report line for dest.
func Line(res *dijkstra.Result, dest string) (string, error) {
	e, err := NewEntry(res, dest)
	if err != nil {
		return "", err
	}

	return e.String(), nil
}

// FormatCost renders a distance the way the report prints it: the shortest
// decimal that round-trips, with ".0" appended to integral values, and
// scientific notation ("1.0E7") from 1e7 upward or below 1e-3, as in
// classic Java double printing.
func FormatCost(c float64) string {
	switch {
	case math.IsInf(c, 1):
		return "Infinity"
	case math.IsInf(c, -1):
		return "-Infinity"
	case math.IsNaN(c):
		return "NaN"
	}

	abs := math.Abs(c)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(c, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}

		return s
	}

	// Scientific: mantissa keeps at least one fractional digit, exponent has
	// no sign padding ("1.5E-4", "2.0E9").
	s := strconv.FormatFloat(c, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.ContainsRune(mant, '.') {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp)

	return mant + "E" + strconv.Itoa(n)
}

// Summary counts what Write produced.
type Summary struct {
	Lines       int
	Reachable   int
	Unreachable int
}

// Write emits one line per destination, in the given order, to w.
// It stops at the first destination that is not a vertex of the graph and
// returns that error with the lines written so far flushed.
func Write(w io.Writer, res *dijkstra.Result, dests []string) (Summary, error) {
	var sum Summary
	bw := bufio.NewWriter(w)

	for _, dest := range dests {
		e, err := NewEntry(res, dest)
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return sum, fmt.Errorf("report: flush: %w", ferr)
			}
			return sum, err
		}
		if _, err := bw.WriteString(e.String()); err != nil {
			return sum, fmt.Errorf("report: write %q: %w", dest, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return sum, fmt.Errorf("report: write %q: %w", dest, err)
		}
		sum.Lines++
		if e.Reachable {
			sum.Reachable++
		} else {
			sum.Unreachable++
		}
	}

	if err := bw.Flush(); err != nil {
		return sum, fmt.Errorf("report: flush: %w", err)
	}

	return sum, nil
}

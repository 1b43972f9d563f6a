// SPDX-License-Identifier: MIT
// Package edgelist reads and writes the line-oriented edge-list format:
//
//	<source> <destination> <cost>
//
// one directed edge per line, tokens separated by any run of whitespace,
// cost a decimal floating-point number.
//
// Reading is tolerant: a line with a token count other than three, a cost
// that does not parse or lies outside ±MaxCost (NaN and infinities
// included), or a line longer than MaxLineLen bytes is skipped with a
// diagnostic and never aborts the read. Only I/O failures are fatal.
//
// MaxCost keeps any two-edge sum finite. Longer paths whose total exceeds
// math.MaxFloat64 still saturate to +Inf in the engine and read as
// unreachable; keep costs well below MaxCost for deep graphs.
//
// Writing emits every edge of a graph in insertion order with the shortest
// exact rendering of its cost, so Write followed by Read rebuilds an
// isomorphic graph, parallel edges included.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/izanahmed/graphing-exponents/core"
)

// ErrMalformedLine classifies every skipped input line.
var ErrMalformedLine = errors.New("edgelist: malformed line")

// Reasons attached to MalformedLineError.
var (
	ErrTokenCount  = errors.New("expected 3 tokens")
	ErrBadCost     = errors.New("cost is not a number")
	ErrCostRange   = errors.New("cost out of range")
	ErrLineTooLong = errors.New("line too long")
)

const (
	// fieldsPerLine is the exact token count of a valid line.
	fieldsPerLine = 3

	// MaxLineLen is the longest line, in bytes, Read will parse.
	MaxLineLen = 1 << 20

	// MaxCost bounds the magnitude of an accepted cost.
	MaxCost = math.MaxFloat64 / 2

	// previewLen caps the text kept for an over-long line.
	previewLen = 64
)

// MalformedLineError describes one skipped line.
type MalformedLineError struct {
	Line   int    // 1-based line number
	Text   string // raw line content
	Reason error  // ErrTokenCount, ErrBadCost, ErrCostRange, ErrLineTooLong, or an AddEdge failure
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("edgelist: line %d: skipping ill-formatted line %q: %v", e.Line, e.Text, e.Reason)
}

// Is makes every MalformedLineError match ErrMalformedLine.
func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }

// Unwrap exposes the reason.
func (e *MalformedLineError) Unwrap() error { return e.Reason }

// Summary reports what Read did.
type Summary struct {
	Lines   int                   // lines scanned
	Edges   int                   // edges added
	Skipped []*MalformedLineError // lines skipped, in input order
}

// Option configures Read.
type Option func(*options)

type options struct {
	logger *slog.Logger
	onSkip func(*MalformedLineError)
}

// WithLogger sets the logger that receives one WARN record per skipped line.
// Defaults to slog.Default(). A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnSkip registers a callback invoked for each skipped line, after logging.
func WithOnSkip(fn func(*MalformedLineError)) Option {
	return func(o *options) {
		if fn != nil {
			o.onSkip = fn
		}
	}
}

// ParseLine splits one line into an edge. It returns a *MalformedLineError
// (with Line left zero) when the line is not exactly three tokens, the cost
// is not a number, or its magnitude exceeds MaxCost. Negative costs parse fine.
func ParseLine(text string) (from, to string, cost float64, err error) {
	fields := strings.Fields(text)
	if len(fields) != fieldsPerLine {
		return "", "", 0, &MalformedLineError{Text: text, Reason: fmt.Errorf("%w, got %d", ErrTokenCount, len(fields))}
	}
	cost, perr := strconv.ParseFloat(fields[2], 64)
	if perr != nil || math.IsNaN(cost) {
		return "", "", 0, &MalformedLineError{Text: text, Reason: fmt.Errorf("%w: %q", ErrBadCost, fields[2])}
	}
	if math.Abs(cost) > MaxCost {
		return "", "", 0, &MalformedLineError{Text: text, Reason: fmt.Errorf("%w: %q", ErrCostRange, fields[2])}
	}

	return fields[0], fields[1], cost, nil
}

// Read parses r line by line and adds every well-formed edge to g.
// Malformed lines are skipped, logged, and collected in the summary.
// The returned error is non-nil only for read failures.
func Read(r io.Reader, g *core.Graph, opts ...Option) (Summary, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		sum Summary
		buf []byte
	)
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, long, err := readLine(br, buf[:0])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("edgelist: read line %d: %w", sum.Lines+1, err)
		}
		buf = line
		sum.Lines++
		text := string(line)

		var (
			from, to string
			cost     float64
		)
		if long {
			text += "..."
			err = &MalformedLineError{Text: text, Reason: fmt.Errorf("%w: over %d bytes", ErrLineTooLong, MaxLineLen)}
		} else {
			from, to, cost, err = ParseLine(text)
		}
		if err == nil {
			_, err = g.AddEdge(from, to, cost)
		}
		if err != nil {
			var mle *MalformedLineError
			if !errors.As(err, &mle) {
				mle = &MalformedLineError{Text: text, Reason: err}
			}
			mle.Line = sum.Lines
			sum.Skipped = append(sum.Skipped, mle)
			o.logger.Warn("skipping ill-formatted line", "line", mle.Line, "text", text, "reason", mle.Reason)
			if o.onSkip != nil {
				o.onSkip(mle)
			}
			continue
		}
		sum.Edges++
	}

	return sum, nil
}

// readLine appends the next line of br to buf, without its terminator.
// A line longer than MaxLineLen is consumed to its end and reported with
// long set; buf then holds only its first previewLen bytes.
// It returns io.EOF only when no bytes remain.
func readLine(br *bufio.Reader, buf []byte) (line []byte, long bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return buf, long, err
		}
		if !long {
			if len(buf)+len(chunk) > MaxLineLen {
				long = true
				buf = append(buf, chunk...)
				buf = buf[:previewLen]
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return buf, long, nil
		}
	}
}

// ReadFile opens path and reads it into g.
func ReadFile(path string, g *core.Graph, opts ...Option) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, g, opts...)
}

// FormatCost renders a cost with the shortest representation that parses
// back to the same float64.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// Write emits every edge of g, in insertion order, one per line.
// Vertex names containing whitespace cannot be represented and are rejected.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if strings.ContainsFunc(e.From, unicode.IsSpace) || strings.ContainsFunc(e.To, unicode.IsSpace) {
			return fmt.Errorf("edgelist: edge %s %q→%q: vertex names must not contain whitespace", e.ID, e.From, e.To)
		}
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", e.From, e.To, FormatCost(e.Weight)); err != nil {
			return fmt.Errorf("edgelist: write edge %s: %w", e.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: flush: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes g to it.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: create %s: %w", path, err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("edgelist: close %s: %w", path, err)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: graphcore/graphio
//
// graphio.go — Read / Write and their file-path wrappers.

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mangara/graphcore/graph"
)

const (
	headerVertices = "Vertices"
	headerEdges    = "Edges"
	directedFlag   = "d"
)

// Sentinel errors for parsing.
var (
	ErrMissingSection = errors.New("graphio: missing section header")
	ErrBadCount       = errors.New("graphio: bad count")
	ErrBadVertex      = errors.New("graphio: bad vertex line")
	ErrBadEdge        = errors.New("graphio: bad edge line")
	ErrTruncated      = errors.New("graphio: unexpected end of input")
)

// lineReader tracks the current line number for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next line with surrounding space trimmed.
func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++

	return strings.TrimSpace(lr.sc.Text()), true
}

// nextNonBlank skips blank lines.
func (lr *lineReader) nextNonBlank() (string, bool) {
	for {
		s, ok := lr.next()
		if !ok || s != "" {
			return s, ok
		}
	}
}

// seek advances past the line equal to header.
func (lr *lineReader) seek(header string) error {
	for {
		s, ok := lr.next()
		if !ok {
			return fmt.Errorf("no %q line: %w", header, ErrMissingSection)
		}
		if s == header {
			return nil
		}
	}
}

// count reads the non-negative integer that follows a header.
func (lr *lineReader) count(section string) (int, error) {
	s, ok := lr.nextNonBlank()
	if !ok {
		return 0, fmt.Errorf("%s count: %w", section, ErrTruncated)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("line %d: %s count %q: %w", lr.line, section, s, ErrBadCount)
	}

	return n, nil
}

// Read parses a graph. The result never allows loops.
func Read(r io.Reader) (*graph.Graph, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	g := graph.New()

	if err := readVertices(lr, g); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if err := readEdges(lr, g); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return g, nil
}

func readVertices(lr *lineReader, g *graph.Graph) error {
	if err := lr.seek(headerVertices); err != nil {
		return err
	}
	n, err := lr.count(headerVertices)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		s, ok := lr.nextNonBlank()
		if !ok {
			return fmt.Errorf("vertex %d of %d: %w", i, n, ErrTruncated)
		}
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return fmt.Errorf("line %d: %q: %w", lr.line, s, ErrBadVertex)
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			return fmt.Errorf("line %d: %q: %w", lr.line, s, ErrBadVertex)
		}
		g.AddVertex(x, y)
	}

	return nil
}

func readEdges(lr *lineReader, g *graph.Graph) error {
	if err := lr.seek(headerEdges); err != nil {
		return err
	}
	m, err := lr.count(headerEdges)
	if err != nil {
		return err
	}
	for i := 0; i < m; i++ {
		s, ok := lr.nextNonBlank()
		if !ok {
			return fmt.Errorf("edge %d of %d: %w", i, m, ErrTruncated)
		}
		fields := strings.Fields(s)
		if len(fields) < 2 || len(fields) > 3 {
			return fmt.Errorf("line %d: %q: %w", lr.line, s, ErrBadEdge)
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil {
			return fmt.Errorf("line %d: %q: %w", lr.line, s, ErrBadEdge)
		}
		directed := len(fields) == 3
		if directed && fields[2] != directedFlag {
			return fmt.Errorf("line %d: flag %q: %w", lr.line, fields[2], ErrBadEdge)
		}
		if directed {
			_, err = g.AddDirectedEdge(a, b)
		} else {
			_, err = g.AddEdge(a, b)
		}
		if err != nil {
			return fmt.Errorf("line %d: %w: %w", lr.line, ErrBadEdge, err)
		}
	}

	return nil
}

// Write emits g in the text format. Hidden vertices and edges are written
// like visible ones; visibility is not part of the format.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, headerVertices)
	fmt.Fprintln(bw, g.VertexCount())
	for _, v := range g.Vertices() {
		fmt.Fprintf(bw, "%s %s\n", formatFloat(v.X()), formatFloat(v.Y()))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, headerEdges)
	fmt.Fprintln(bw, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.Directed {
			fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, directedFlag)
		} else {
			fmt.Fprintf(bw, "%d %d\n", e.From, e.To)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// WriteFile creates or truncates path and calls Write.
func WriteFile(path string, g *graph.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	return Write(f, g)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Package cluster implements greedy single-linkage clustering of a 3D
// point cloud: the closest unconsumed pair of points is joined first,
// one pair per step.
package cluster

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davidkna/aoc-2025"
)

// Point is a junction box position.
type Point = aoc.Pt3Int

// MaxCoord is the largest accepted coordinate. It keeps every squared
// distance well below Sentinel.
const MaxCoord = 1<<30 - 1

var (
	ErrNoPoints   = errors.New("no points")
	ErrFieldCount = errors.New("want 3 comma-separated coordinates")
)

// ParseError reports a line that is not of the form x,y,z.
type ParseError struct {
	Line int // 1-based; 0 if the error is not about a single line
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parsing points: %v", e.Err)
	}
	return fmt.Sprintf("parsing points: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseBytes is ParsePoints over an in-memory input.
func ParseBytes(in []byte) ([]Point, error) {
	return ParsePoints(bytes.NewReader(in))
}

// ParsePoints reads one point per line. Trailing blank lines are ignored;
// any other line that is not three unsigned decimal integers separated
// by commas fails the whole parse.
func ParsePoints(r io.Reader) ([]Point, error) {
	var (
		pts   []Point
		blank int // first blank line not yet known to be trailing
	)
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSuffix(s.Text(), "\r")
		if text == "" {
			if blank == 0 {
				blank = line
			}
			continue
		}
		if blank != 0 {
			return nil, &ParseError{Line: blank, Err: ErrFieldCount}
		}
		p, err := parsePoint(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		pts = append(pts, p)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	if len(pts) == 0 {
		return nil, &ParseError{Err: ErrNoPoints}
	}
	return pts, nil
}

func parsePoint(text string) (Point, error) {
	f := strings.Split(text, ",")
	if len(f) != 3 {
		return Point{}, ErrFieldCount
	}
	var c [3]int
	for i, s := range f {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Point{}, err
		}
		if v > MaxCoord {
			return Point{}, fmt.Errorf("coordinate %d exceeds %d", v, MaxCoord)
		}
		c[i] = int(v)
	}
	return Point{X: c[0], Y: c[1], Z: c[2]}, nil
}

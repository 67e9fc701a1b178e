package cluster

import (
	"errors"

	"tailscale.com/types/logger"
)

// ErrExhausted is returned when a merge is requested but every edge has
// already been consumed. For well-formed input this means the caller
// asked for more steps than the point set has edges.
var ErrExhausted = errors.New("no unconsumed edges left")

// MergeEvent records one merge step.
type MergeEvent struct {
	I, J int // I < J
	Dist int // squared distance between I and J
	ID   int // group id after the merge
}

type options struct {
	logf        logger.Logf
	pruneJoined bool
}

// Option configures an Engine.
type Option func(*options)

// WithLogf sets where per-step traces go. The default discards them.
func WithLogf(logf logger.Logf) Option {
	return func(o *options) { o.logf = logf }
}

// WithPruneJoined makes every commit also consume all edges between the
// two groups it joins, so no later step can pick an edge inside a group.
func WithPruneJoined(v bool) Option {
	return func(o *options) { o.pruneJoined = v }
}

// Engine repeatedly joins the closest pair of points whose edge has not
// been used yet. It is not safe for concurrent use.
type Engine struct {
	points  []Point
	m       *Matrix
	t       *Tracker
	history []MergeEvent
	opts    options
}

func NewEngine(points []Point, opts ...Option) *Engine {
	e := &Engine{
		points: points,
		m:      NewMatrix(points),
		t:      NewTracker(len(points)),
		opts:   options{logf: logger.Discard},
	}
	for _, o := range opts {
		o(&e.opts)
	}
	return e
}

func (e *Engine) Points() []Point { return e.points }

func (e *Engine) Matrix() *Matrix { return e.m }

func (e *Engine) Tracker() *Tracker { return e.t }

// History returns the merges committed so far, in order.
func (e *Engine) History() []MergeEvent { return e.history }

// Next returns the pair SelectAndMerge would merge, without merging it.
// Among equally distant pairs the first in row-major order wins. ok is
// false if every edge is consumed.
func (e *Engine) Next() (i, j int, ok bool) {
	best := Sentinel
	n := e.m.Len()
	for a := 0; a < n; a++ {
		row := e.m.row(a)
		for b := a + 1; b < n; b++ {
			if row[b] < best {
				best, i, j, ok = row[b], a, b, true
			}
		}
	}
	return i, j, ok
}

// Commit consumes the edge i-j and merges the groups of i and j. The pair
// should come from Next.
func (e *Engine) Commit(i, j int) MergeEvent {
	var gi, gj []int
	if e.opts.pruneJoined && !e.t.Same(i, j) {
		gi, gj = e.t.Members(i), e.t.Members(j)
	}
	ev := MergeEvent{I: i, J: j, Dist: e.m.At(i, j)}
	e.m.Consume(i, j)
	ev.ID = e.t.Merge(i, j)
	for _, a := range gi {
		for _, b := range gj {
			e.m.Consume(a, b)
		}
	}
	e.history = append(e.history, ev)
	e.opts.logf("merge %d: %d (%v) + %d (%v), dist² %d -> group %d",
		len(e.history), i, e.points[i], j, e.points[j], ev.Dist, ev.ID)
	return ev
}

// SelectAndMerge merges the closest unconsumed pair. It returns
// ErrExhausted if there is none.
func (e *Engine) SelectAndMerge() (MergeEvent, error) {
	i, j, ok := e.Next()
	if !ok {
		return MergeEvent{}, ErrExhausted
	}
	return e.Commit(i, j), nil
}

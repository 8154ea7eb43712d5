package motion

import (
	"errors"
	"fmt"
	"sort"
)

// Configuration errors returned at construction time
var (
	// ErrEmptyTable indicates a property was declared with no breakpoints
	ErrEmptyTable = errors.New("breakpoint table is empty")

	// ErrUnorderedTable indicates breakpoint inputs decrease somewhere in the table
	ErrUnorderedTable = errors.New("breakpoint inputs must be non-decreasing")
)

// Breakpoint maps a scroll fraction to an output value
type Breakpoint struct {
	In  float64
	Out float64
}

// Table is a piecewise-linear function over scroll fraction.
// The zero value is not usable; build one with NewTable.
type Table struct {
	points []Breakpoint
}

// NewTable validates and copies the given breakpoints
func NewTable(points ...Breakpoint) (Table, error) {
	if len(points) == 0 {
		return Table{}, ErrEmptyTable
	}
	for i := 1; i < len(points); i++ {
		if points[i].In < points[i-1].In {
			return Table{}, fmt.Errorf("%w: %g after %g", ErrUnorderedTable, points[i].In, points[i-1].In)
		}
	}

	cp := make([]Breakpoint, len(points))
	copy(cp, points)
	return Table{points: cp}, nil
}

// MustTable is like NewTable but panics on error. Intended for package-level defaults.
func MustTable(points ...Breakpoint) Table {
	t, err := NewTable(points...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of breakpoints
func (t Table) Len() int {
	return len(t.points)
}

// Points returns a copy of the breakpoints
func (t Table) Points() []Breakpoint {
	cp := make([]Breakpoint, len(t.points))
	copy(cp, t.points)
	return cp
}

// At evaluates the table at x, clamping to the endpoint outputs outside the defined range
func (t Table) At(x float64) float64 {
	n := len(t.points)
	if n == 0 {
		return 0
	}

	first, last := t.points[0], t.points[n-1]
	if x <= first.In {
		return first.Out
	}
	if x >= last.In {
		return last.Out
	}

	// First breakpoint strictly after x; the one before it is the segment start.
	// Duplicate inputs therefore resolve to the later value (right-continuous step).
	i := sort.Search(n, func(i int) bool { return t.points[i].In > x })
	a, b := t.points[i-1], t.points[i]

	frac := (x - a.In) / (b.In - a.In)
	return a.Out + (b.Out-a.Out)*frac
}

// Span returns the distance between the smallest and largest outputs
func (t Table) Span() float64 {
	if len(t.points) == 0 {
		return 0
	}
	lo, hi := t.points[0].Out, t.points[0].Out
	for _, p := range t.points[1:] {
		lo = min(lo, p.Out)
		hi = max(hi, p.Out)
	}
	return hi - lo
}

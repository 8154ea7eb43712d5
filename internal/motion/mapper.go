package motion

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Property names an animated value
type Property string

// Standard properties tracked for the mascot
const (
	PropX       Property = "x-offset"
	PropY       Property = "y-offset"
	PropScale   Property = "scale"
	PropOpacity Property = "opacity"
)

// Layout selects the breakpoint profile for the current viewport
type Layout int

const (
	Wide Layout = iota
	Narrow
)

// String returns the layout name
func (l Layout) String() string {
	switch l {
	case Wide:
		return "wide"
	case Narrow:
		return "narrow"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Profile holds one breakpoint table per property
type Profile map[Property]Table

// ErrNoProfiles indicates the mapper was built without any layout profile
var ErrNoProfiles = errors.New("mapper requires at least one layout profile")

// ErrProfileMismatch indicates two layout profiles animate different properties
var ErrProfileMismatch = errors.New("layout profiles must animate the same properties")

// Frame is one emitted set of animation parameters
type Frame struct {
	Input   float64              // Clamped scroll fraction
	Layout  Layout               // Profile the targets were resolved from
	Targets map[Property]float64 // Interpolated, unsmoothed values
	Values  map[Property]float64 // Smoothed values to render
}

// Value returns the smoothed value for p (0 if not animated)
func (f Frame) Value(p Property) float64 {
	return f.Values[p]
}

// Sink receives every emitted frame. It should be cheap and idempotent.
type Sink func(Frame)

// Option configures a Mapper
type Option func(*mapperOptions)

type mapperOptions struct {
	fps       int
	frequency float64
	epsilon   float64
	smoothing bool
	layout    Layout
}

// WithFPS sets the sample rate the spring is tuned for
func WithFPS(fps int) Option {
	return func(o *mapperOptions) { o.fps = fps }
}

// WithFrequency sets the spring's angular frequency (higher settles faster)
func WithFrequency(freq float64) Option {
	return func(o *mapperOptions) { o.frequency = freq }
}

// WithEpsilon sets the settle tolerance for a unit output span
func WithEpsilon(eps float64) Option {
	return func(o *mapperOptions) { o.epsilon = eps }
}

// WithoutSmoothing emits targets directly (reduced motion)
func WithoutSmoothing() Option {
	return func(o *mapperOptions) { o.smoothing = false }
}

// WithLayout sets the initial layout
func WithLayout(l Layout) Option {
	return func(o *mapperOptions) { o.layout = l }
}

// Mapper converts raw scroll samples into smoothed per-property values
type Mapper struct {
	profiles map[Layout]Profile
	props    []Property
	layout   Layout
	sink     Sink
	smooth   map[Property]*Smoother

	input float64
	frame Frame

	// Coalescing: a sample arriving while one is being processed replaces
	// any previously pending sample instead of queueing behind it.
	inFlight   bool
	pending    float64
	hasPending bool

	unsubscribe func()
	closed      bool
}

// NewMapper validates the profiles and builds a mapper at rest on scroll position 0
func NewMapper(profiles map[Layout]Profile, sink Sink, opts ...Option) (*Mapper, error) {
	o := mapperOptions{
		fps:       DefaultFPS,
		frequency: DefaultFrequency,
		epsilon:   DefaultEpsilon,
		smoothing: true,
		layout:    Wide,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	var props []Property
	for layout, profile := range profiles {
		if len(profile) == 0 {
			return nil, fmt.Errorf("%s profile: %w", layout, ErrNoProfiles)
		}
		for prop, table := range profile {
			if table.Len() == 0 {
				return nil, fmt.Errorf("%s profile, property %q: %w", layout, prop, ErrEmptyTable)
			}
		}
		keys := slices.Sorted(maps.Keys(profile))
		if props == nil {
			props = keys
		} else if !slices.Equal(props, keys) {
			return nil, fmt.Errorf("%w: %v vs %v", ErrProfileMismatch, props, keys)
		}
	}

	if _, ok := profiles[o.layout]; !ok {
		// Fall back to any configured layout, lowest first
		o.layout = slices.Min(slices.Collect(maps.Keys(profiles)))
	}

	m := &Mapper{
		profiles: profiles,
		props:    props,
		layout:   o.layout,
		sink:     sink,
		smooth:   make(map[Property]*Smoother, len(props)),
	}

	profile := profiles[o.layout]
	for _, p := range props {
		table := profile[p]
		s := NewSmoother(o.fps, o.frequency, o.epsilon*max(1, table.Span()), table.At(0))
		if !o.smoothing {
			s.Disable()
		}
		m.smooth[p] = &s
	}
	m.frame = m.snapshot()

	return m, nil
}

// Attach subscribes to src. Any previous subscription is dropped first.
func (m *Mapper) Attach(src Source) {
	if m.closed {
		return
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.unsubscribe = src.Subscribe(m.Sample)
}

// Detach unsubscribes and tears the mapper down. Samples and ticks that
// arrive afterwards are discarded.
func (m *Mapper) Detach() {
	if m.closed {
		return
	}
	m.closed = true
	m.hasPending = false
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Closed reports whether Detach has been called
func (m *Mapper) Closed() bool {
	return m.closed
}

// Sample processes a raw scroll fraction and emits a frame
func (m *Mapper) Sample(raw float64) {
	if m.closed {
		return
	}
	if m.inFlight {
		m.pending = raw
		m.hasPending = true
		return
	}

	m.inFlight = true
	defer func() { m.inFlight = false }()

	for {
		m.step(clamp01(raw))
		if m.closed || !m.hasPending {
			return
		}
		raw = m.pending
		m.hasPending = false
	}
}

// Tick advances smoothing one frame against the last sample
func (m *Mapper) Tick() {
	m.Sample(m.input)
}

// SetLayout switches the active profile. Values keep smoothing from where
// they are toward the new layout's targets.
func (m *Mapper) SetLayout(l Layout) {
	if m.closed || l == m.layout {
		return
	}
	if _, ok := m.profiles[l]; !ok {
		return
	}
	m.layout = l
}

// Layout returns the active layout
func (m *Mapper) Layout() Layout {
	return m.layout
}

// Settled reports whether every property rests on its target
func (m *Mapper) Settled() bool {
	for _, s := range m.smooth {
		if !s.Settled() {
			return false
		}
	}
	// Targets may be stale after a layout change that has not been sampled yet
	profile := m.profiles[m.layout]
	for _, p := range m.props {
		if m.smooth[p].Target() != profile[p].At(m.input) {
			return false
		}
	}
	return true
}

// Frame returns the most recently emitted frame
func (m *Mapper) Frame() Frame {
	return m.frame
}

// Properties returns the animated property names in sorted order
func (m *Mapper) Properties() []Property {
	return slices.Clone(m.props)
}

// Target resolves the unsmoothed value of p at input x for the active layout
func (m *Mapper) Target(p Property, x float64) float64 {
	table, ok := m.profiles[m.layout][p]
	if !ok {
		return 0
	}
	return table.At(clamp01(x))
}

func (m *Mapper) step(x float64) {
	m.input = x
	profile := m.profiles[m.layout]
	for _, p := range m.props {
		m.smooth[p].Step(profile[p].At(x))
	}
	m.frame = m.snapshot()
	if m.sink != nil {
		m.sink(m.frame)
	}
}

func (m *Mapper) snapshot() Frame {
	f := Frame{
		Input:   m.input,
		Layout:  m.layout,
		Targets: make(map[Property]float64, len(m.props)),
		Values:  make(map[Property]float64, len(m.props)),
	}
	for _, p := range m.props {
		s := m.smooth[p]
		f.Targets[p] = s.Target()
		f.Values[p] = s.Value()
	}
	return f
}

func clamp01(x float64) float64 {
	switch {
	case x != x: // NaN from a zero-height measurement
		return 0
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

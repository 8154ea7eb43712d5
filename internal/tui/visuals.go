package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/tui/styles"
)

// Entrance spring: stiffness 100 and damping 24 on a unit mass give an
// angular frequency of 10 and a damping ratio of 1.2.
const (
	visualFrequency = 10.0
	visualDamping   = 1.2
	visualOpacity   = 0.9
	visualScaleFrom = 0.9
	bobPeriod       = 2800 * time.Millisecond
	bobStagger      = 200 * time.Millisecond
)

// floatingVisual is one decorative glyph on the hero stage
type floatingVisual struct {
	domain.Visual
	index int

	spring   harmonica.Spring
	progress float64 // 0 hidden, 1 fully entered
	velocity float64
}

// visualField animates the hero stage glyphs
type visualField struct {
	visuals []*floatingVisual
	started time.Time
	reduced bool
	settled bool
}

func newVisualField(visuals []domain.Visual, fps int, reduced bool) *visualField {
	f := &visualField{reduced: reduced}
	for i, v := range visuals {
		fv := &floatingVisual{
			Visual: v,
			index:  i,
			spring: harmonica.NewSpring(harmonica.FPS(fps), visualFrequency, visualDamping),
		}
		if reduced {
			fv.progress = 1
		}
		f.visuals = append(f.visuals, fv)
	}
	f.settled = reduced || len(visuals) == 0
	return f
}

// Start marks the entrance start time
func (f *visualField) Start(at time.Time) {
	f.started = at
}

// Step advances every entrance spring whose delay has elapsed
func (f *visualField) Step(at time.Time) {
	if f.settled || f.started.IsZero() {
		return
	}
	elapsed := at.Sub(f.started).Seconds()
	settled := true
	for _, v := range f.visuals {
		if elapsed < v.Delay {
			settled = false
			continue
		}
		v.progress, v.velocity = v.spring.Update(v.progress, v.velocity, 1)
		if math.Abs(1-v.progress) < 1e-3 && math.Abs(v.velocity) < 1e-3 {
			v.progress, v.velocity = 1, 0
		} else {
			settled = false
		}
	}
	f.settled = settled
}

// Settled reports whether every entrance has finished
func (f *visualField) Settled() bool {
	return f.settled
}

// bob returns the vertical nudge for the i-th bobbing element at time at:
// 0 at rest, -1 at the top of each period
func bob(at, started time.Time, i int, reduced bool) int {
	if reduced || started.IsZero() {
		return 0
	}
	period := bobPeriod + time.Duration(i)*bobStagger
	phase := float64(at.Sub(started)%period) / float64(period)
	return -int(math.Round((1 - math.Cos(2*math.Pi*phase)) / 2))
}

// stageRect is the area of the screen the hero stage occupies
type stageRect struct {
	Col, Row, Width, Height int
}

// Render draws the visible glyphs onto screen. stage is in screen coordinates
// and may extend above the top edge once the page scrolls.
func (f *visualField) Render(screen string, stage stageRect, minRow, maxRow int, at time.Time) string {
	for _, v := range f.visuals {
		opacity := visualOpacity * v.progress
		if opacity < 0.05 {
			continue
		}
		scale := visualScaleFrom + (1-visualScaleFrom)*v.progress

		glyph := v.Glyph
		if v.Large && scale > 0.97 {
			glyph = v.Glyph + " " + v.Glyph
		}
		col := stage.Col + int(math.Round(v.X*float64(stage.Width))) - lipgloss.Width(glyph)/2
		row := stage.Row + int(math.Round(v.Y*float64(stage.Height))) + bob(at, f.started, v.index, f.reduced)
		if row < minRow || row > maxRow || col < 0 {
			continue
		}

		style := lipgloss.NewStyle().Foreground(styles.Fade(styles.MabloPurple, opacity))
		screen = overlay(screen, []string{glyph}, col, row, style)
	}
	return screen
}

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mablo/mablo/internal/motion"
	"github.com/mablo/mablo/internal/tui/styles"
)

// Scroll fraction at which the mascot reaches its header dock
const dockAt = 0.2

// MascotProfiles returns the breakpoint tables that move the mascot from the
// hero stage into the header dock. Offsets are fractions of the screen.
func MascotProfiles() map[motion.Layout]motion.Profile {
	opacity := motion.MustTable(
		motion.Breakpoint{In: 0, Out: 1},
		motion.Breakpoint{In: 0.08, Out: 0.75},
		motion.Breakpoint{In: dockAt, Out: 1},
	)
	return map[motion.Layout]motion.Profile{
		motion.Wide: {
			motion.PropX:       motion.MustTable(motion.Breakpoint{In: 0, Out: 0.75}, motion.Breakpoint{In: dockAt, Out: 0.96}),
			motion.PropY:       motion.MustTable(motion.Breakpoint{In: 0, Out: 0.45}, motion.Breakpoint{In: dockAt, Out: 0}),
			motion.PropScale:   motion.MustTable(motion.Breakpoint{In: 0, Out: 1}, motion.Breakpoint{In: dockAt, Out: 0.2}),
			motion.PropOpacity: opacity,
		},
		motion.Narrow: {
			motion.PropX:       motion.MustTable(motion.Breakpoint{In: 0, Out: 0.5}, motion.Breakpoint{In: dockAt, Out: 0.9}),
			motion.PropY:       motion.MustTable(motion.Breakpoint{In: 0, Out: 0.62}, motion.Breakpoint{In: dockAt, Out: 0}),
			motion.PropScale:   motion.MustTable(motion.Breakpoint{In: 0, Out: 0.6}, motion.Breakpoint{In: dockAt, Out: 0.2}),
			motion.PropOpacity: opacity,
		},
	}
}

// Mascot art, largest first. Every line of a variant has the same width.
var mascotArt = [...][]string{
	{
		`  ╭───────╮    `,
		`  │ ◕   ◕ │  ╱ `,
		`  │   ◡   │ ╱  `,
		`  ╰──┬─┬──╯╱   `,
		`   ╭─┴─┴─╮     `,
		`   │ ▓▓▓ │     `,
		`   ╰─────╯     `,
	},
	{
		`╭─────╮  `,
		`│ ◕ ◕ │╱ `,
		`╰─┬─┬─╯  `,
		` ╭┴─┴╮   `,
	},
	{
		`(◕‿◕)`,
	},
}

// mascotVariant picks the art for a smoothed scale
func mascotVariant(scale float64) []string {
	switch {
	case scale > 0.66:
		return mascotArt[0]
	case scale > 0.33:
		return mascotArt[1]
	default:
		return mascotArt[2]
	}
}

// MascotState is the mascot's rendered geometry for one frame
type MascotState struct {
	Art     []string
	Col     int // Top-left cell
	Row     int
	Opacity float64
}

// placeMascot converts a frame into screen geometry. bob is a vertical nudge
// in rows (negative is up); it is dropped once the mascot sits in the header.
func placeMascot(f motion.Frame, width, height int, bob int) MascotState {
	art := mascotVariant(f.Value(motion.PropScale))
	w, h := lipgloss.Width(art[0]), len(art)

	col := int(math.Round(f.Value(motion.PropX)*float64(width))) - w/2
	row := int(math.Round(f.Value(motion.PropY)*float64(height-1))) - h/2
	if row > 0 {
		row += bob
	}

	return MascotState{
		Art:     art,
		Col:     max(0, min(col, width-w)),
		Row:     max(0, min(row, height-h)),
		Opacity: f.Value(motion.PropOpacity),
	}
}

// Render draws the mascot onto screen
func (s MascotState) Render(screen string) string {
	style := lipgloss.NewStyle().Foreground(styles.Fade(styles.MabloPurple, s.Opacity)).Bold(true)
	return overlay(screen, s.Art, s.Col, s.Row, style)
}

// overlay splices block (plain text lines) into screen at (col, row). Blank
// cells of the block are treated as opaque so the art keeps its silhouette.
func overlay(screen string, block []string, col, row int, style lipgloss.Style) string {
	lines := strings.Split(screen, "\n")
	for i, part := range block {
		y := row + i
		if y < 0 || y >= len(lines) {
			continue
		}
		lines[y] = spliceLine(lines[y], style.Render(part), col, lipgloss.Width(part))
	}
	return strings.Join(lines, "\n")
}

// spliceLine replaces width cells of line starting at col with insert
func spliceLine(line, insert string, col, width int) string {
	left := ansi.Truncate(line, col, "")
	if pad := col - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(line, col+width, "")
	return left + "\x1b[0m" + insert + right
}

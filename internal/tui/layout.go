package tui

import "github.com/mablo/mablo/internal/motion"

// Vertical chrome: header bar and its rule above the page, status line below
const (
	HeaderHeight = 2
	FooterHeight = 1

	// Lines scrolled before the header compacts
	CompactAfter = 2

	// Columns kept free at the right of the header for the docked mascot
	DockWidth = 8

	DefaultNarrowWidth = 100
)

// layoutFor selects the responsive layout for a terminal width
func layoutFor(width, narrowBelow int) motion.Layout {
	if narrowBelow <= 0 {
		narrowBelow = DefaultNarrowWidth
	}
	if width < narrowBelow {
		return motion.Narrow
	}
	return motion.Wide
}

// viewportHeight is the page area left between header and status line
func viewportHeight(height int) int {
	return max(1, height-HeaderHeight-FooterHeight)
}

// formWidth sizes the contact form for the layout
func formWidth(width int, l motion.Layout) int {
	if l == motion.Narrow {
		return max(24, width-8)
	}
	return min(72, width*3/5)
}

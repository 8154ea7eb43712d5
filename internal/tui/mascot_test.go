package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mablo/mablo/internal/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMascotProfilesBuildAMapper(t *testing.T) {
	m, err := motion.NewMapper(MascotProfiles(), nil, motion.WithoutSmoothing())
	require.NoError(t, err)

	m.Sample(0)
	assert.Equal(t, 0.75, m.Frame().Value(motion.PropX))
	assert.Equal(t, 1.0, m.Frame().Value(motion.PropScale))

	m.Sample(dockAt)
	assert.Equal(t, 0.96, m.Frame().Value(motion.PropX))
	assert.Equal(t, 0.0, m.Frame().Value(motion.PropY))
	assert.Equal(t, 0.2, m.Frame().Value(motion.PropScale))

	// Opacity dips mid-flight and recovers at the dock
	assert.Equal(t, 0.75, m.Target(motion.PropOpacity, 0.08))
	assert.Equal(t, 1.0, m.Target(motion.PropOpacity, 1))
}

func TestMascotArtIsRectangular(t *testing.T) {
	for i, art := range mascotArt {
		w := lipgloss.Width(art[0])
		for _, line := range art {
			assert.Equal(t, w, lipgloss.Width(line), "variant %d", i)
		}
	}
}

func TestMascotVariantThresholds(t *testing.T) {
	assert.Len(t, mascotVariant(1), len(mascotArt[0]))
	assert.Len(t, mascotVariant(0.67), len(mascotArt[0]))
	assert.Len(t, mascotVariant(0.5), len(mascotArt[1]))
	assert.Len(t, mascotVariant(0.2), len(mascotArt[2]))
}

func frameOf(x, y, scale, opacity float64) motion.Frame {
	return motion.Frame{Values: map[motion.Property]float64{
		motion.PropX:       x,
		motion.PropY:       y,
		motion.PropScale:   scale,
		motion.PropOpacity: opacity,
	}}
}

func TestPlaceMascotOnStage(t *testing.T) {
	s := placeMascot(frameOf(0.75, 0.45, 1, 1), 100, 40, 0)
	assert.Equal(t, 75-15/2, s.Col)
	assert.Equal(t, 18-7/2, s.Row)

	bobbed := placeMascot(frameOf(0.75, 0.45, 1, 1), 100, 40, -1)
	assert.Equal(t, s.Row-1, bobbed.Row)
}

func TestPlaceMascotDocked(t *testing.T) {
	s := placeMascot(frameOf(0.96, 0, 0.2, 1), 100, 40, -1)
	assert.Equal(t, 0, s.Row)
	assert.Equal(t, 94, s.Col)
	assert.Len(t, s.Art, 1)
}

func TestPlaceMascotStaysOnScreen(t *testing.T) {
	s := placeMascot(frameOf(1.2, 1.5, 1, 1), 40, 10, 0)
	assert.Equal(t, 40-15, s.Col)
	assert.Equal(t, 10-7, s.Row)
}

func TestSpliceLine(t *testing.T) {
	assert.Equal(t, "abc\x1b[0mXYfghij", spliceLine("abcdefghij", "XY", 3, 2))
	assert.Equal(t, "ab  \x1b[0mX", spliceLine("ab", "X", 4, 1))
}

func TestOverlaySkipsRowsOffScreen(t *testing.T) {
	out := overlay("aaaa\nbbbb", []string{"X", "Y", "Z"}, 1, 1, lipgloss.NewStyle())
	assert.Equal(t, "aaaa\nb\x1b[0mXbb", out)
}

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFadeEndpoints(t *testing.T) {
	assert.True(t, strings.EqualFold(string(MabloPurple), string(Fade(MabloPurple, 1))))
	assert.True(t, strings.EqualFold(string(Backdrop), string(Fade(MabloPurple, 0))))
	assert.True(t, strings.EqualFold(string(MabloPurple), string(Fade(MabloPurple, 3))))
}

func TestFadeIgnoresNamedColours(t *testing.T) {
	assert.Equal(t, lipgloss.Color("212"), Fade(lipgloss.Color("212"), 0.5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("Mablo", 0))
	assert.Equal(t, "Mablo", Truncate("Mablo", 10))
	assert.Equal(t, "Mab…", Truncate("Mablo Digital", 4))
}

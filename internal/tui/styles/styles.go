package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Color palette
var (
	MabloPurple = lipgloss.Color("#8B7BB8")
	Midnight    = lipgloss.Color("#2C3E50")
	Backdrop    = lipgloss.Color("#1B1926") // Assumed terminal background, target of fades
	SlateLight  = lipgloss.Color("#3A3550")
	DimGray     = lipgloss.Color("#6E6A80")
	LightGray   = lipgloss.Color("#B8B3C7")
	White       = lipgloss.Color("#F5F3FA")
	Green       = lipgloss.Color("#4CAF7D")
	Red         = lipgloss.Color("#E5534B")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(MabloPurple)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(White).
				Bold(true).
				MarginBottom(1)

	KickerStyle = lipgloss.NewStyle().
			Foreground(MabloPurple).
			Bold(true)
)

// Header styles. The compact header gets a filled bar once the page scrolls.
var (
	HeaderStyle = lipgloss.NewStyle().
			Padding(0, 2)

	HeaderCompactStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Background(SlateLight)

	BrandStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(MabloPurple).
			Bold(true).
			Padding(0, 1)

	NavLinkStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	NavLinkActiveStyle = lipgloss.NewStyle().
				Foreground(MabloPurple).
				Bold(true).
				Padding(0, 1)
)

// Buttons
var (
	PrimaryButtonStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(MabloPurple).
				Bold(true).
				Padding(0, 2)

	OutlineButtonStyle = lipgloss.NewStyle().
				Foreground(MabloPurple).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(MabloPurple).
				Padding(0, 1)
)

// Cards
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SlateLight).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MabloPurple).
			Padding(1, 2)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MabloPurple).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	DimBadgeStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)
)

// Match highlight styles for palette results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(MabloPurple).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(MabloPurple).
					Background(SlateLight).
					Bold(true)
)

// Form styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Bold(true)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Italic(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(MabloPurple)

	ToastStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Green).
			Padding(0, 1)

	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Red).
			Padding(0, 1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(MabloPurple)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Fade blends c toward the backdrop. opacity 1 returns c unchanged, 0 the
// backdrop itself. Unparseable colours are returned as is.
func Fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	opacity = max(0, min(1, opacity))
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bg, err := colorful.Hex(string(Backdrop))
	if err != nil {
		return c
	}
	return lipgloss.Color(bg.BlendLab(fg, opacity).Clamped().Hex())
}

// Truncate truncates a string to the given cell width with an ellipsis.
// ANSI sequences are preserved.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

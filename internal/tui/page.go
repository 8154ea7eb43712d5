package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/launch"
	"github.com/mablo/mablo/internal/tui/styles"
	qrcode "github.com/skip2/go-qrcode"
)

// Minimum hero stage height in the narrow layout
const narrowStageHeight = 9

// pageOptions carries everything renderPage needs besides the catalog
type pageOptions struct {
	Width       int
	Height      int // Viewport height; the hero fills at least one screen
	Narrow      bool
	Tagline     string // Rendered tagline
	About       string // Rendered about markdown
	Form        string // Rendered contact form; empty in static output
	Email       string
	QR          string
	ShowButtons bool
}

// page is a rendered document plus the geometry the overlays need
type page struct {
	Content string
	Lines   int
	Offsets map[domain.SectionID]int // First line of each section
	Stage   stageRect                // Hero stage in page coordinates
}

// renderPage lays the catalog out as one scrollable document
func renderPage(cat *domain.Catalog, o pageOptions) page {
	p := page{Offsets: make(map[domain.SectionID]int, len(domain.Sections))}
	var blocks []string
	lines := 0

	add := func(id domain.SectionID, block string) {
		if id != "" {
			p.Offsets[id] = lines
		}
		blocks = append(blocks, block)
		lines += lipgloss.Height(block)
	}

	hero, stage := renderHero(cat, o)
	p.Stage = stage
	add(domain.SectionHero, hero)
	add(domain.SectionServices, renderServices(cat, o))
	add(domain.SectionAbout, renderAbout(cat, o))
	add(domain.SectionContact, renderContact(cat, o))
	add("", renderFooter(cat, o))

	p.Content = strings.Join(blocks, "\n")
	p.Lines = lines
	return p
}

func sectionHeading(kicker, title string) string {
	return styles.KickerStyle.Render(strings.ToUpper(kicker)) + "\n" +
		styles.SectionTitleStyle.Render(title)
}

func renderHero(cat *domain.Catalog, o pageOptions) (string, stageRect) {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Foreground(styles.MabloPurple).Render(strings.ToUpper(cat.Hero.Title)))
	b.WriteString("\n\n")
	b.WriteString(o.Tagline)
	if o.ShowButtons {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			styles.PrimaryButtonStyle.Render(cat.Hero.PrimaryCTA+" → [4]"),
			"  ",
			styles.OutlineButtonStyle.Render(cat.Hero.SecondaryCTA+" [2]"),
		))
	}
	text := b.String()

	if o.Narrow {
		textBlock := lipgloss.PlaceHorizontal(o.Width, lipgloss.Center, lipgloss.NewStyle().Padding(1, 2).Render(text))
		textH := lipgloss.Height(textBlock)
		stageH := max(narrowStageHeight, o.Height-textH)
		stage := strings.Repeat("\n", stageH-1)
		return textBlock + "\n" + stage, stageRect{Col: 0, Row: textH, Width: o.Width, Height: stageH}
	}

	left := o.Width / 2
	height := max(o.Height, lipgloss.Height(text)+2)
	textBlock := lipgloss.Place(left, height, lipgloss.Left, lipgloss.Center,
		lipgloss.NewStyle().PaddingLeft(4).Render(text))
	return textBlock, stageRect{Col: left, Row: 0, Width: o.Width - left, Height: height}
}

func serviceIcon(icon domain.IconType) string {
	switch icon {
	case domain.IconWeb:
		return "▣"
	case domain.IconData:
		return "⛁"
	case domain.IconOptimization:
		return "⚙"
	default:
		return "◆"
	}
}

func renderServices(cat *domain.Catalog, o pageOptions) string {
	cols := len(cat.Services)
	if o.Narrow || cols == 0 {
		cols = 1
	}
	cardWidth := (o.Width-4)/cols - 2

	cards := make([]string, 0, len(cat.Services))
	for _, svc := range cat.Services {
		accent := lipgloss.Color(svc.Accent)
		body := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(serviceIcon(svc.Icon)+"  "+svc.Title) + "\n" +
			lipgloss.NewStyle().Foreground(accent).Render(svc.Subtitle) + "\n\n" +
			styles.SubtitleStyle.Render(svc.Description)
		cards = append(cards, styles.CardStyle.Width(cardWidth).Render(body))
	}

	var grid string
	if o.Narrow {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		sectionHeading(navLabel(cat, domain.SectionServices), "Lo que hacemos") + "\n" + grid,
	)
}

func renderAbout(cat *domain.Catalog, o pageOptions) string {
	cols := 4
	switch {
	case o.Narrow:
		cols = 1
	case o.Width < 140:
		cols = 2
	}
	cardWidth := (o.Width-4)/cols - 2

	var rows []string
	var row []string
	for i, member := range cat.Team {
		body := styles.TitleStyle.Render(member.Name) + "\n" +
			styles.DimStyle.Render(member.Role) + "\n" +
			styles.AccentStyle.Render(member.Specialty) + "\n\n" +
			styles.SubtitleStyle.Render(member.Bio)
		row = append(row, styles.CardStyle.Width(cardWidth).Render(body))
		if len(row) == cols || i == len(cat.Team)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		sectionHeading(navLabel(cat, domain.SectionAbout), "Quiénes somos") + "\n" +
			strings.TrimRight(o.About, "\n") + "\n\n" +
			lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func renderContact(cat *domain.Catalog, o pageOptions) string {
	info := styles.LabelStyle.Render("Escríbenos") + "\n" +
		styles.AccentStyle.Render(o.Email)
	if o.Form != "" {
		info += "\n" + styles.DimStyle.Render("[e] abrir en tu correo")
	}
	if o.QR != "" {
		info += "\n\n" + styles.DimStyle.Render(o.QR)
	}

	var body string
	switch {
	case o.Form == "":
		body = info
	case o.Narrow:
		body = o.Form + "\n\n" + info
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, o.Form, "    ", info)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		sectionHeading(navLabel(cat, domain.SectionContact), cat.Contact.Heading) + "\n" +
			styles.SubtitleStyle.Render(cat.Contact.Intro) + "\n\n" +
			body,
	)
}

func renderFooter(cat *domain.Catalog, o pageOptions) string {
	tagline := lipgloss.NewStyle().Width(max(20, o.Width-8)).Foreground(styles.DimGray).Render(cat.Footer.Tagline)
	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(styles.SlateLight).
		Render(
			styles.BrandStyle.Render(cat.Brand) + "\n\n" +
				tagline + "\n\n" +
				styles.DimStyle.Render(cat.Footer.Copyright) + "\n" +
				styles.DimStyle.Render(cat.Footer.Credits),
		)
}

// navLabel returns the nav label pointing at section, or the section id
func navLabel(cat *domain.Catalog, section domain.SectionID) string {
	for _, link := range cat.Nav {
		if link.Section == section {
			return link.Label
		}
	}
	return string(section)
}

// renderMarkdown renders md with the named glamour style wrapped at width
func renderMarkdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(20, width)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// renderQR renders a mailto QR code for email using half-block characters
func renderQR(email string) (string, error) {
	q, err := qrcode.New(launch.MailtoURL(email, ""), qrcode.Low)
	if err != nil {
		return "", fmt.Errorf("failed to encode contact QR: %w", err)
	}
	return strings.TrimRight(q.ToSmallString(false), "\n"), nil
}

package tui

import (
	"github.com/mablo/mablo/internal/config"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/motion"
	"github.com/mablo/mablo/internal/tui/styles"
)

// DefaultStaticWidth is used when the output width cannot be detected
const DefaultStaticWidth = 80

// RenderStatic renders the whole page once, for output that is not a
// terminal. The tagline is fully typed and the form is replaced by the
// contact address.
func RenderStatic(cat *domain.Catalog, cfg *config.Config, width int) (string, error) {
	if width <= 0 {
		width = DefaultStaticWidth
	}

	about, err := renderMarkdown(cat.About, "notty", width-8)
	if err != nil {
		return "", err
	}
	qr, err := renderQR(cfg.Contact.Email)
	if err != nil {
		return "", err
	}

	tagline := styles.TitleStyle.Render(cat.Hero.Lead) +
		styles.AccentStyle.Render(cat.Hero.Typed) +
		styles.TitleStyle.Render(cat.Hero.Trail)

	p := renderPage(cat, pageOptions{
		Width:   width,
		Height:  0,
		Narrow:  layoutFor(width, cfg.UI.NarrowWidth) == motion.Narrow,
		Tagline: tagline,
		About:   about,
		Email:   cfg.Contact.Email,
		QR:      qr,
	})
	return p.Content + "\n", nil
}

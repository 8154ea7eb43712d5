package tui

import (
	"log/slog"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mablo/mablo/internal/config"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/motion"
	"github.com/mablo/mablo/internal/service"
	"github.com/mablo/mablo/internal/tui/components"
	"github.com/mablo/mablo/internal/typewriter"
)

// Animation timing
const (
	statusDuration = 3 * time.Second
	bobInterval    = 100 * time.Millisecond // Frame interval when only bobbing
	scrollFreq     = 12.0                   // Section glide spring frequency
	scrollEpsilon  = 0.5                    // Lines
)

// Options wires the model to its content and services
type Options struct {
	Catalog      *domain.Catalog
	Contact      *service.ContactService
	Search       *service.SearchService
	Config       *config.Config
	Logger       *slog.Logger
	Mail         MailOpener // Optional
	StartSection domain.SectionID
}

// animation holds the state mutated from callbacks (typewriter steps, mapper
// frames). The Model is copied on every Update, so it keeps a pointer.
type animation struct {
	sched    *loopScheduler
	revealer *typewriter.Revealer
	typed    typewriter.State

	feed   *motion.Feed
	mapper *motion.Mapper
	frame  motion.Frame

	scroll       motion.Smoother
	scrolling    bool
	scrollTarget int

	visuals *visualField

	ticking       bool
	frameInterval time.Duration
	started       time.Time
	now           time.Time
	reduced       bool
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready  bool
	Width  int
	Height int

	catalog *domain.Catalog
	contact *service.ContactService
	search  *service.SearchService
	cfg     *config.Config
	logger  *slog.Logger
	mail    MailOpener

	anim *animation

	// UI components
	viewport viewport.Model
	help     help.Model
	tagline  components.Tagline
	form     components.ContactForm
	palette  components.Palette
	menu     components.Menu
	showHelp bool

	// Rendered page and caches keyed by width
	page       page
	about      string
	aboutWidth int
	qr         string

	pendingSection domain.SectionID

	// UI state
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int

	initCmds []tea.Cmd
}

// NewModel creates a new application model. The typewriter is started right
// away; its first tick is returned from Init.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cat := opts.Catalog

	a := &animation{
		sched:         newLoopScheduler(),
		feed:          motion.NewFeed(),
		frameInterval: time.Second / time.Duration(cfg.Motion.FPS),
		reduced:       cfg.Motion.Reduced,
	}

	mapperOpts := []motion.Option{
		motion.WithFPS(cfg.Motion.FPS),
		motion.WithFrequency(cfg.Motion.Frequency),
	}
	if a.reduced {
		mapperOpts = append(mapperOpts, motion.WithoutSmoothing())
	}
	mapper, err := motion.NewMapper(MascotProfiles(), func(f motion.Frame) { a.frame = f }, mapperOpts...)
	if err != nil {
		return Model{}, err
	}
	mapper.Attach(a.feed)
	a.mapper = mapper
	a.frame = mapper.Frame()
	a.scroll = motion.NewSmoother(cfg.Motion.FPS, scrollFreq, scrollEpsilon, 0)
	a.visuals = newVisualField(cat.Visuals, cfg.Motion.FPS, a.reduced)

	a.revealer = typewriter.New(a.sched, func(s typewriter.State) { a.typed = s })

	qr, err := renderQR(cfg.Contact.Email)
	if err != nil {
		logger.Warn("contact QR unavailable", "error", err)
	}

	m := Model{
		catalog:        cat,
		contact:        opts.Contact,
		search:         opts.Search,
		cfg:            cfg,
		logger:         logger,
		mail:           opts.Mail,
		anim:           a,
		viewport:       viewport.New(0, 0),
		help:           help.New(),
		tagline:        components.NewTagline(cat.Hero.Lead, cat.Hero.Trail),
		form:           components.NewContactForm(cat.Contact.Success),
		palette:        components.NewPalette(),
		menu:           components.NewMenu(cat.Nav, cat.Hero.PrimaryCTA),
		qr:             qr,
		pendingSection: opts.StartSection,
	}
	a.revealer.Start(cat.Hero.Typed, cfg.Typewriter.Interval, cfg.Typewriter.Delay, func() {
		logger.Debug("tagline revealed", "text", cat.Hero.Typed)
	})
	m.initCmds = append(m.initCmds, m.tagline.Start())

	return m, nil
}

// Init starts the typewriter ticks and the animation loop
func (m Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{}, m.initCmds...)
	cmds = append(cmds, m.anim.sched.Drain(), m.ensureTicking())
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.pendingSection != "" {
			m.jumpTo(m.pendingSection)
			m.pendingSection = ""
		}
		cmds = append(cmds, m.ensureTicking())

	case tea.KeyMsg:
		model, cmd := m.handleKeyMsg(msg)
		m = model.(Model)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				cmds = append(cmds, m.scrollBy(-3))
			case tea.MouseButtonWheelDown:
				cmds = append(cmds, m.scrollBy(3))
			}
		}

	case timerFiredMsg:
		m.anim.sched.Fire(msg.id)

	case frameMsg:
		// Frames only move overlays; the page itself is unchanged
		return m, m.stepFrame(msg.At)

	case ScrollToMsg:
		cmds = append(cmds, m.scrollTo(msg.Section))

	case InquirySubmittedMsg:
		m.form.Finish(msg.Err)
		if msg.Err != nil {
			m.logger.Error("inquiry submission failed", "error", msg.Err)
			cmds = append(cmds, m.setStatus(ErrMsg{Err: msg.Err, Context: "No se pudo enviar"}.Error(), true))
		} else {
			cmds = append(cmds, m.setStatus(m.catalog.Contact.Success, false))
		}

	case ErrMsg:
		m.logger.Error("error", "context", msg.Context, "error", msg.Err)
		cmds = append(cmds, m.setStatus(msg.Error(), true))

	case StatusMsg:
		cmds = append(cmds, m.setStatus(msg.Message, msg.IsError))

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}

	default:
		// Blink, spinner and similar component ticks
		var cmd tea.Cmd
		m.tagline, cmd = m.tagline.Update(msg)
		cmds = append(cmds, cmd)
		m.form, cmd, _ = m.form.Update(msg)
		cmds = append(cmds, cmd)
		m.palette, cmd, _, _ = m.palette.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.tagline.SetState(m.anim.typed), m.anim.sched.Drain())
	m.refreshPage()
	return m, tea.Batch(cmds...)
}

// resize recomputes the layout for a new terminal size
func (m *Model) resize(width, height int) {
	m.Width, m.Height = width, height
	m.Ready = true

	layout := layoutFor(width, m.cfg.UI.NarrowWidth)
	m.anim.mapper.SetLayout(layout)

	m.viewport.Width = width
	m.viewport.Height = viewportHeight(height)
	m.form.SetWidth(formWidth(width, layout))
	m.palette.SetSize(width, height)
	m.menu.SetWidth(min(32, width-4))
	m.help.Width = width

	aboutWidth := width - 8
	if aboutWidth != m.aboutWidth {
		about, err := renderMarkdown(m.catalog.About, m.cfg.UI.MarkdownStyle, aboutWidth)
		if err != nil {
			m.logger.Warn("about markdown fallback to plain text", "error", err)
			about = m.catalog.About
		}
		m.about, m.aboutWidth = about, aboutWidth
	}

	m.logger.Debug("resized", "width", width, "height", height, "layout", layout.String())
	m.refreshPage()
	m.publishScroll()
}

// refreshPage re-renders the document into the viewport
func (m *Model) refreshPage() {
	if !m.Ready {
		return
	}
	narrow := m.anim.mapper.Layout() == motion.Narrow
	qr := m.qr
	if !narrow && m.Width < 110 || narrow && m.Width < 40 {
		qr = ""
	}
	m.page = renderPage(m.catalog, pageOptions{
		Width:       m.Width,
		Height:      m.viewport.Height,
		Narrow:      narrow,
		Tagline:     m.tagline.View(),
		About:       m.about,
		Form:        m.form.View(),
		Email:       m.cfg.Contact.Email,
		QR:          qr,
		ShowButtons: true,
	})
	m.viewport.SetContent(m.page.Content)
}

// maxOffset is the last valid viewport offset
func (m Model) maxOffset() int {
	return max(0, m.page.Lines-m.viewport.Height)
}

// scrollFraction is the viewport position as a fraction of the scrollable range
func (m Model) scrollFraction() float64 {
	maxOff := m.maxOffset()
	if maxOff == 0 {
		return 0
	}
	return float64(m.viewport.YOffset) / float64(maxOff)
}

// publishScroll feeds the current scroll position to the mascot
func (m *Model) publishScroll() {
	m.anim.feed.Publish(m.scrollFraction())
}

// scrollBy moves the viewport by n lines, cancelling any section glide
func (m *Model) scrollBy(n int) tea.Cmd {
	m.anim.scrolling = false
	m.viewport.SetYOffset(max(0, min(m.viewport.YOffset+n, m.maxOffset())))
	m.publishScroll()
	return m.ensureTicking()
}

// scrollTo glides to a section, or jumps there with reduced motion
func (m *Model) scrollTo(section domain.SectionID) tea.Cmd {
	target, ok := m.page.Offsets[section]
	if !ok {
		return m.setStatus(ErrMsg{Err: domain.ErrUnknownSection, Context: string(section)}.Error(), true)
	}
	m.logger.Debug("scroll to section", "section", section, "line", target)
	if m.anim.reduced {
		m.jumpTo(section)
		return m.ensureTicking()
	}
	m.anim.scroll.Reset(float64(m.viewport.YOffset))
	m.anim.scrollTarget = min(target, m.maxOffset())
	m.anim.scrolling = true
	return m.ensureTicking()
}

// jumpTo moves to a section without animation
func (m *Model) jumpTo(section domain.SectionID) {
	m.anim.scrolling = false
	m.viewport.SetYOffset(min(m.page.Offsets[section], m.maxOffset()))
	m.publishScroll()
}

// currentSection is the section whose top is nearest above the viewport top
func (m Model) currentSection() domain.SectionID {
	current := domain.SectionHero
	for _, s := range domain.Sections {
		if off, ok := m.page.Offsets[s]; ok && off <= m.viewport.YOffset+1 {
			current = s
		}
	}
	// The contact section may be too short to reach the top
	if m.viewport.YOffset >= m.maxOffset() && m.maxOffset() > 0 {
		current = domain.SectionContact
	}
	return current
}

// ensureTicking starts the frame loop if it is not running
func (m Model) ensureTicking() tea.Cmd {
	if m.anim.ticking {
		return nil
	}
	m.anim.ticking = true
	if m.anim.started.IsZero() {
		now := time.Now()
		m.anim.started, m.anim.now = now, now
		m.anim.visuals.Start(now)
	}
	return frameCmd(m.anim.frameInterval)
}

// busy reports whether anything needs full-rate frames
func (m Model) busy() bool {
	a := m.anim
	return a.scrolling || !a.mapper.Settled() || !a.visuals.Settled()
}

// stepFrame advances every animation by one frame and schedules the next
func (m *Model) stepFrame(at time.Time) tea.Cmd {
	a := m.anim
	a.now = at

	if a.scrolling {
		v := a.scroll.Step(float64(a.scrollTarget))
		m.viewport.SetYOffset(int(math.Round(v)))
		if a.scroll.Settled() {
			a.scrolling = false
			m.viewport.SetYOffset(a.scrollTarget)
		}
		m.publishScroll()
	} else if !a.mapper.Settled() {
		a.mapper.Tick()
	}
	a.visuals.Step(at)

	switch {
	case m.busy():
		return frameCmd(a.frameInterval)
	case !a.reduced:
		return frameCmd(bobInterval)
	default:
		a.ticking = false
		return nil
	}
}

// setStatus shows a temporary status message
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusSeq, statusDuration)
}

// Frame returns the mascot's latest animation frame
func (m Model) Frame() motion.Frame {
	return m.anim.frame
}

// Close releases the scroll subscription and pending timers
func (m Model) Close() {
	m.anim.revealer.Cancel()
	m.anim.mapper.Detach()
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Cargando..."
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatus(),
	)

	a := m.anim
	st := m.page.Stage
	stage := stageRect{
		Col:    st.Col,
		Row:    HeaderHeight + st.Row - m.viewport.YOffset,
		Width:  st.Width,
		Height: st.Height,
	}
	screen = a.visuals.Render(screen, stage, HeaderHeight, HeaderHeight+m.viewport.Height-1, a.now)
	screen = placeMascot(a.frame, m.Width, m.Height-FooterHeight, bob(a.now, a.started, 0, a.reduced)).Render(screen)

	switch {
	case m.palette.IsVisible():
		return m.palette.View()
	case m.showHelp:
		return m.renderHelp()
	case m.menu.IsVisible():
		menu := m.menu.View()
		col := max(0, m.Width-lipgloss.Width(menu)-1)
		return overlay(screen, splitLines(menu), col, HeaderHeight, lipgloss.NewStyle())
	}
	return screen
}

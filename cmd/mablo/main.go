package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mablo/mablo/internal/config"
	"github.com/mablo/mablo/internal/content"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/launch"
	"github.com/mablo/mablo/internal/service"
	"github.com/mablo/mablo/internal/store"
	"github.com/mablo/mablo/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	cfgFile     string
	contentFile string
	v           = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "mablo",
	Short: "Mablo's landing page, in your terminal",
	Long: `mablo renders the Mablo studio landing page as an interactive
terminal app: animated hero, services, team and a contact form.

When stdout is not a terminal the page is printed once as plain text.`,
	SilenceUsage: true,
	RunE:         runSite,
}

func init() {
	config.SetDefaults(v)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: "+config.DefaultConfigPath()+"/config.yaml)")
	flags.StringVar(&contentFile, "content", "", "site content YAML replacing the built-in copy")
	rootCmd.Flags().Bool("reduced-motion", false, "disable smoothing, bobbing and scroll glides")
	rootCmd.Flags().String("section", "", "section to open at (hero, services, about, contact)")

	_ = v.BindPFlag("motion.reduced", rootCmd.Flags().Lookup("reduced-motion"))
	_ = v.BindPFlag("ui.start_section", rootCmd.Flags().Lookup("section"))

	rootCmd.AddCommand(inquiriesCmd, configCmd, versionCmd)
	configCmd.AddCommand(configInitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is everything the commands share once configuration is loaded
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog *domain.Catalog
	outbox  *store.OutboxStore
	closers []io.Closer
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

// bootstrap loads configuration, sets up logging, then loads the catalog and
// opens the outbox concurrently
func bootstrap(ctx context.Context) (*app, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	cfg, err := config.LoadConfig(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a := &app{cfg: cfg}
	logger, closer, err := config.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = config.NullLogger()
	} else {
		a.closers = append(a.closers, closer)
	}
	slog.SetDefault(logger)
	a.logger = logger

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if contentFile != "" {
			a.catalog, err = content.Load(contentFile)
		} else {
			a.catalog, err = content.Default()
		}
		return err
	})
	g.Go(func() error {
		var err error
		a.outbox, err = store.NewOutboxStore(cfg.Storage.Path)
		return err
	})
	if err := g.Wait(); err != nil {
		if a.outbox != nil {
			a.outbox.Close()
		}
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, a.outbox)
	return a, nil
}

func runSite(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	logger := a.logger
	logger.Info("starting mablo", "version", Version)

	searchSvc := service.NewSearchService(a.catalog, logger)
	start, err := searchSvc.ResolveSection(a.cfg.UI.StartSection)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		width := tui.DefaultStaticWidth
		if ok {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
				width = w
			}
		}
		page, err := tui.RenderStatic(a.catalog, a.cfg, width)
		if err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
		_, err = io.WriteString(out, page)
		return err
	}

	contactSvc := service.NewContactService(a.outbox, a.cfg.Contact.SubmitDelay, logger)
	model, err := tui.NewModel(tui.Options{
		Catalog:      a.catalog,
		Contact:      contactSvc,
		Search:       searchSvc,
		Config:       a.cfg,
		Logger:       logger,
		Mail:         launch.NewOpener(a.cfg.Contact.MailCommand, a.cfg.Contact.MailArgs, logger),
		StartSection: start,
	})
	if err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	logger.Info("starting TUI", "section", start)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/nefes/internal/catalog"
	"github.com/mmcdole/nefes/internal/config"
	"github.com/mmcdole/nefes/internal/content"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/log"
	"github.com/mmcdole/nefes/internal/service"
	"github.com/mmcdole/nefes/internal/tui"
	"github.com/mmcdole/nefes/internal/tui/components"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	category    string
	configPath  string
	writeConfig bool
}

func main() {
	var showVersion bool
	var opts options
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&opts.category, "category", "", "open the exercise list filtered to this category")
	flag.StringVar(&opts.configPath, "config", "", "path to a config file")
	flag.BoolVar(&opts.writeConfig, "write-config", false, "write the effective config to the default location and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("nefes %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.writeConfig {
		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Println("✓ Configuration saved!")
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("nefes needs an interactive terminal")
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting nefes", "version", Version)

	seed, err := content.Load()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	// Seed 0 leaves the simulator to seed itself from the clock
	var random catalog.RandomSource
	if cfg.Catalog.Seed != 0 {
		random = catalog.NewSeededRandom(cfg.Catalog.Seed)
	}
	simulator, err := catalog.NewSimulator(catalog.SimulatorConfig{
		Delay:              cfg.Catalog.Delay(),
		FailureProbability: cfg.Catalog.FailureProbability,
		Corpus:             seed.Exercises,
		Random:             random,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}

	svc := tui.Services{
		Exercises: service.NewExerciseService(simulator, seed.Exercises, seed.Categories, logger),
		Blog:      service.NewBlogService(seed.Posts, logger),
		Profile:   service.NewProfileService(seed.Profile, cfg.Profile.Goal, logger),
		Support:   service.NewSupportService(seed.FAQ, cfg.Support.Cooldown(), logger),
	}

	model := tui.NewModel(svc, tui.Options{
		InitialCategory:  resolveCategory(seed.Categories, opts.category),
		SkipWelcome:      cfg.UI.SkipWelcome,
		Tips:             seed.Tips,
		ReadyPromptDelay: cfg.UI.ReadyPrompt(),
		Logger:           logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Close()
	}
	if err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// resolveCategory maps the -category flag onto a declared category,
// ignoring case. Unknown names are kept so the list can suggest a fix.
func resolveCategory(categories []domain.Category, name string) domain.Category {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.EqualFold(name, string(domain.CategoryAll)) || strings.EqualFold(name, components.AllLabel) {
		return domain.CategoryAll
	}
	for _, c := range categories {
		if strings.EqualFold(string(c), name) {
			return c
		}
	}
	return domain.Category(name)
}

package commands

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-carousel/internal/app"
	"github.com/treykane/cli-carousel/internal/config"
	"github.com/treykane/cli-carousel/internal/deck"
	"github.com/treykane/cli-carousel/internal/logging"
	"github.com/treykane/cli-carousel/internal/store"
)

const logFileName = "carousel.log"

func loadDeck(cfg config.Config, arg string) (*deck.Deck, error) {
	dir, err := cfg.Deck(arg)
	if err != nil {
		return nil, err
	}
	d, err := deck.Load(dir, deck.Options{Width: cfg.CardWidth, Style: cfg.Style})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func run(opts *rootOptions, arg string) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	d, err := loadDeck(cfg, arg)
	if err != nil {
		return err
	}

	if dir, err := config.Dir(); err == nil {
		if err := logging.UseDefaultFile(filepath.Join(dir, logFileName)); err != nil {
			log.Warn("logging to stderr", "error", err)
		}
	}

	m := app.New(app.Options{
		Config: cfg,
		Deck:   d,
		Store:  store.Open(cfg.StateDir),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Error("carousel exited with error", "error", err)
		return fmt.Errorf("run carousel: %w", err)
	}
	return nil
}

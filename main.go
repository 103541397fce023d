package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/sebastiantruijens/moviesearch/internal/config"
	"github.com/sebastiantruijens/moviesearch/internal/logger"
	"github.com/sebastiantruijens/moviesearch/internal/omdb"
	"github.com/sebastiantruijens/moviesearch/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "moviesearch:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags("moviesearch")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer closeLog()

	client := omdb.NewClient(cfg.OMDb.APIKey, log,
		omdb.WithBaseURL(cfg.OMDb.BaseURL),
		omdb.WithTimeout(cfg.OMDb.Timeout),
	)

	model := ui.NewModel(client, log, ui.Options{
		DefaultQuery:      cfg.Search.DefaultQuery,
		ProbePosters:      cfg.Posters.Probe,
		CardPlaceholder:   cfg.Posters.CardPlaceholder,
		DetailPlaceholder: cfg.Posters.DetailPlaceholder,
	})

	log.Info().Str("base_url", cfg.OMDb.BaseURL).Msg("starting")

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

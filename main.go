// tutor TUI - A terminal front end for a locally-hosted tutoring assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/tutor-tui/internal/api"
	"github.com/jeranaias/tutor-tui/internal/config"
	"github.com/jeranaias/tutor-tui/internal/store"
	"github.com/jeranaias/tutor-tui/internal/ui/app"
	"github.com/jeranaias/tutor-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		configPath  = flag.String("config", config.DefaultPath(), "path to config file")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("tutor-tui %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tutor-tui is interactive and needs a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tutor-tui: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.APITimeout(),
	})
	webhook := api.NewWebhookClientWithConfig(&api.WebhookConfig{
		URL:     cfg.Webhook.URL,
		Timeout: cfg.WebhookTimeout(),
	})

	m := app.New(app.Deps{
		Config:    cfg,
		Theme:     styles.NewTheme(),
		ChatStore: store.NewChatStore(),
		Settings:  store.NewSettings(cfg.UI.UseRAGDefault),
		QA:        client,
		Docs:      client,
		Uploader:  webhook,
		Health:    client,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tutor-tui: %v\n", err)
		os.Exit(1)
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tutor-tui/internal/api"
	"github.com/jeranaias/tutor-tui/internal/config"
	"github.com/jeranaias/tutor-tui/internal/store"
	"github.com/jeranaias/tutor-tui/internal/ui/chat"
	"github.com/jeranaias/tutor-tui/internal/ui/documents"
	"github.com/jeranaias/tutor-tui/internal/ui/styles"
)

// Tab identifies the active view.
type Tab int

const (
	TabChat Tab = iota
	TabDocuments
)

// HealthService is the probe the shell runs once at startup.
type HealthService interface {
	HealthCheck(ctx context.Context) (*api.HealthResponse, error)
}

// healthProbeTimeout keeps the informational probe from tying up a command
// goroutine for the full ask timeout.
const healthProbeTimeout = 5 * time.Second

// =============================================================================
// MODEL
// =============================================================================

// Model is the top-level application model.
type Model struct {
	theme    *styles.Theme
	keys     KeyMap
	settings *store.Settings
	health   HealthService

	activeTab Tab
	chat      chat.Model
	docs      documents.Model

	healthNote string

	width  int
	height int
}

// Deps bundles everything the shell needs; main wires it from config.
type Deps struct {
	Config    *config.Config
	Theme     *styles.Theme
	ChatStore *store.ChatStore
	Settings  *store.Settings
	QA        chat.QAService
	Docs      documents.DocumentService
	Uploader  documents.UploadService
	Health    HealthService
}

// New assembles the application model from its dependencies.
func New(d Deps) Model {
	chatView := chat.New(d.Theme, d.ChatStore, d.Settings, d.QA, d.Config.APITimeout(), chat.Options{
		ShowTimestamps: d.Config.UI.ShowTimestamps,
		MarkdownWidth:  d.Config.UI.MarkdownWidth,
	})

	docsView := documents.New(d.Theme, d.Docs, d.Uploader,
		d.Config.APITimeout(), d.Config.WebhookTimeout(),
		d.Config.Upload.AllowedExtensions, d.Config.MaxUploadBytes())

	return Model{
		theme:    d.Theme,
		keys:     DefaultKeyMap(),
		settings: d.Settings,
		health:   d.Health,
		chat:     chatView,
		docs:     docsView,
	}
}

// Init starts both views and fires the one-shot health probe.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.chat.Init(), m.docs.Init(), m.healthCmd())
}

// healthCmd probes the backend once. Failures only annotate the status bar.
func (m Model) healthCmd() tea.Cmd {
	if m.health == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
		defer cancel()

		resp, err := m.health.HealthCheck(ctx)
		return HealthMsg{Resp: resp, Err: err}
	}
}

// ActiveTab returns the currently selected tab.
func (m Model) ActiveTab() Tab {
	return m.activeTab
}

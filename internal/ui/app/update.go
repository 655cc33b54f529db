// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tutor-tui/internal/ui/chat"
	"github.com/jeranaias/tutor-tui/internal/ui/documents"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update routes events: global keys first, then the active view. Async
// results are delivered to the view that owns them regardless of which tab
// is showing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			if m.activeTab == TabChat {
				m.activeTab = TabDocuments
			} else {
				m.activeTab = TabChat
			}
			return m, nil

		case key.Matches(msg, m.keys.ToggleRAG):
			m.settings.ToggleRAG()
			return m, nil
		}

		return m.updateActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.contentHeight()
		m.chat.SetSize(msg.Width, contentHeight)
		m.docs.SetSize(msg.Width, contentHeight)
		return m, nil

	case HealthMsg:
		m.healthNote = healthNote(msg)
		return m, nil

	case chat.AskResultMsg, chat.AttachmentLoadedMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case documents.DocumentsLoadedMsg, documents.UploadResultMsg, documents.DeleteResultMsg:
		var cmd tea.Cmd
		m.docs, cmd = m.docs.Update(msg)
		return m, cmd
	}

	// Everything else (spinner ticks, reload ticks) goes to both views; each
	// ignores what it does not recognize.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	cmds = append(cmds, cmd)
	m.docs, cmd = m.docs.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// updateActive forwards a key event to the active view only.
func (m Model) updateActive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabChat:
		m.chat, cmd = m.chat.Update(msg)
	case TabDocuments:
		m.docs, cmd = m.docs.Update(msg)
	}
	return m, cmd
}

// contentHeight is the area left for the active view after the header and
// status bar.
func (m Model) contentHeight() int {
	h := m.height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.statusView())
	if h < 1 {
		h = 1
	}
	return h
}

// healthNote summarizes the startup probe for the status bar.
func healthNote(msg HealthMsg) string {
	if msg.Err != nil {
		return "backend unreachable"
	}
	if msg.Resp == nil {
		return ""
	}
	if msg.Resp.Status == "healthy" {
		return "backend ok"
	}
	return "backend degraded"
}

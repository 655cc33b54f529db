// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders header, active view, status bar.
func (m Model) View() string {
	var content string
	switch m.activeTab {
	case TabChat:
		content = m.chat.View()
	case TabDocuments:
		content = m.docs.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		content,
		m.statusView(),
	)
}

// headerView renders the title, the tab bar and the retrieval indicator.
func (m Model) headerView() string {
	title := m.theme.HeaderTitle.Render("Tutor")

	chatTab := m.theme.TabInactive.Render("Chat")
	docsTab := m.theme.TabInactive.Render("Documents")
	if m.activeTab == TabChat {
		chatTab = m.theme.TabActive.Render("Chat")
	} else {
		docsTab = m.theme.TabActive.Render("Documents")
	}

	rag := m.theme.RAGOff.Render("RAG off")
	if m.settings.UseRAG() {
		rag = m.theme.RAGOn.Render("RAG on")
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", chatTab, docsTab)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(rag) - 2
	if gap < 1 {
		gap = 1
	}

	return m.theme.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + rag)
}

// statusView renders the key hints for the active view plus the health note.
func (m Model) statusView() string {
	var hints []string
	switch m.activeTab {
	case TabChat:
		hints = []string{
			"Enter send", "M-Enter newline", "C-o attach", "C-l clear",
		}
	case TabDocuments:
		hints = []string{
			"u upload", "d delete", "f filter", "r refresh",
		}
	}
	hints = append(hints, "Tab switch", "C-r RAG", "C-c quit")

	line := m.theme.KeyHint.Render(strings.Join(hints, " · "))
	if m.healthNote != "" {
		note := m.theme.MutedText.Render(m.healthNote)
		gap := m.width - lipgloss.Width(line) - lipgloss.Width(note) - 2
		if gap < 1 {
			gap = 1
		}
		line += strings.Repeat(" ", gap) + note
	}

	return m.theme.StatusBar.Width(m.width).Render(line)
}

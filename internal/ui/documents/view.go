// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package documents

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tutor-tui/internal/util"
)

// Column widths for the document table. Filename flexes with the terminal;
// the rest are fixed.
const (
	colID      = 5
	colSubject = 14
	colStatus  = 12
	colChunks  = 7
	colDate    = 17
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the documents view: banner, table, then any open prompt.
func (m Model) View() string {
	var sections []string

	if m.banner.text != "" {
		style := m.theme.InfoBanner
		if m.banner.isError {
			style = m.theme.ErrorBanner
		}
		sections = append(sections, style.Render(m.banner.text))
	}

	sections = append(sections, m.tableView())

	switch {
	case m.uploading:
		sections = append(sections,
			m.theme.InputFrame.Width(m.width-2).Render(m.uploadInput.View()),
			m.theme.KeyHint.Render("Enter upload · Esc cancel"))
	case m.confirming:
		prompt := fmt.Sprintf("Delete document %d? (y/n)", m.confirmID)
		sections = append(sections, m.theme.ErrorBanner.Render(prompt))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// tableView renders the document table with the filter line above it.
func (m Model) tableView() string {
	var b strings.Builder

	filter := "all"
	if m.statusFilter != "" {
		filter = m.statusFilter.DisplayName()
	}
	line := fmt.Sprintf("Documents: %d  ·  filter: %s", m.total, filter)
	if m.loading {
		line += "  " + m.spinner.View()
	}
	b.WriteString(m.theme.MutedText.Render(line))
	b.WriteString("\n")

	header := util.PadRight("ID", colID) +
		util.PadRight("Filename", m.filenameWidth()) +
		util.PadRight("Subject", colSubject) +
		util.PadRight("Status", colStatus) +
		util.PadRight("Chunks", colChunks) +
		"Uploaded"
	b.WriteString(m.theme.TableHeader.Render(header))
	b.WriteString("\n")

	if len(m.docs) == 0 {
		b.WriteString(m.theme.MutedText.Render("No documents."))
		return b.String()
	}

	for i, doc := range m.docs {
		row := util.PadRight(fmt.Sprintf("%d", doc.ID), colID) +
			util.PadRight(util.TruncateWidth(doc.Filename, m.filenameWidth()-1), m.filenameWidth()) +
			util.PadRight(util.TruncateWidth(doc.Subject, colSubject-1), colSubject)

		status := util.PadRight(doc.Status.DisplayName(), colStatus)
		chunks := util.PadRight(fmt.Sprintf("%d", doc.ChunkCount), colChunks)
		date := doc.CreatedAt.Format("2006-01-02 15:04")

		if i == m.cursor {
			b.WriteString(m.theme.TableRowCursor.Render("> " + row + status + chunks + date))
		} else {
			b.WriteString(m.theme.TableRow.Render("  " + row))
			b.WriteString(m.theme.StatusStyle(string(doc.Status)).Render(status))
			b.WriteString(m.theme.TableRow.Render(chunks + date))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// filenameWidth returns the flexible filename column width.
func (m Model) filenameWidth() int {
	w := m.width - colID - colSubject - colStatus - colChunks - colDate - 2
	if w < 12 {
		w = 12
	}
	if w > 48 {
		w = 48
	}
	return w
}

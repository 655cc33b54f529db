// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package documents

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tutor-tui/internal/api"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles events for the documents view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.uploading {
			return m.updateUploadPrompt(msg)
		}
		if m.confirming {
			return m.updateConfirmPrompt(msg)
		}
		return m.updateBrowsing(msg)

	case DocumentsLoadedMsg:
		// A response from a superseded request must not overwrite the list.
		if msg.Seq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.banner = banner{text: "Failed to load documents: " + msg.Err.Error(), isError: true}
			return m, nil
		}
		m.docs = msg.Resp.Documents
		m.total = msg.Resp.Total
		if m.cursor >= len(m.docs) {
			m.cursor = len(m.docs) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		if m.anyProcessing() {
			return m, reloadAfter(processingPoll)
		}
		return m, nil

	case UploadResultMsg:
		if msg.Err != nil {
			m.banner = banner{text: "Upload failed: " + msg.Err.Error(), isError: true}
			return m, nil
		}
		m.banner = banner{text: fmt.Sprintf("Upload accepted: %s (processing)", msg.Name)}
		return m, reloadAfter(uploadReloadDelay)

	case DeleteResultMsg:
		if msg.Err != nil {
			// Keep the stale list; the next successful reload reconciles it.
			m.banner = banner{text: "Failed to delete document", isError: true}
			return m, nil
		}
		m.banner = banner{text: "Document deleted"}
		return m.reload()

	case reloadTickMsg:
		return m.reload()

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// updateBrowsing handles keys in the default table-browsing state.
func (m Model) updateBrowsing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.docs)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Refresh):
		m.banner = banner{}
		return m.reload()

	case key.Matches(msg, m.keys.Filter):
		m.statusFilter = nextStatus(m.statusFilter)
		m.cursor = 0
		return m.reload()

	case key.Matches(msg, m.keys.Upload):
		m.uploading = true
		m.banner = banner{}
		m.uploadInput.SetValue("")
		return m, m.uploadInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		if len(m.docs) == 0 {
			return m, nil
		}
		m.confirming = true
		m.confirmID = m.docs[m.cursor].ID

	case key.Matches(msg, m.keys.Cancel):
		m.banner = banner{}
	}
	return m, nil
}

// updateUploadPrompt handles keys while the upload path prompt is open.
func (m Model) updateUploadPrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.uploading = false
		m.uploadInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		path := strings.TrimSpace(m.uploadInput.Value())
		m.uploading = false
		m.uploadInput.Blur()
		if path == "" {
			return m, nil
		}
		m.banner = banner{text: "Uploading..."}
		return m, UploadDocumentCmd(m.uploader, m.uploadTimeout, path, m.allowedExts, m.maxBytes)
	}

	var cmd tea.Cmd
	m.uploadInput, cmd = m.uploadInput.Update(msg)
	return m, cmd
}

// updateConfirmPrompt handles the y/n delete confirmation.
func (m Model) updateConfirmPrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirming = false
		return m, DeleteDocumentCmd(m.svc, m.apiTimeout, m.confirmID)

	case key.Matches(msg, m.keys.Deny), key.Matches(msg, m.keys.Cancel):
		m.confirming = false
	}
	return m, nil
}

// nextStatus advances the status filter one step around the cycle.
func nextStatus(cur api.DocumentStatus) api.DocumentStatus {
	for i, s := range statusCycle {
		if s == cur {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return ""
}

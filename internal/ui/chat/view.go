// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tutor-tui/internal/model"
	"github.com/jeranaias/tutor-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat view: conversation history above, input area below.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.inputView()
}

// refreshViewport re-renders the conversation into the viewport. When follow
// is true the viewport jumps to the bottom, keeping the latest exchange in
// sight.
func (m *Model) refreshViewport(follow bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	if follow {
		m.viewport.GotoBottom()
	}
}

// renderMessages renders the full history, newest last.
func (m *Model) renderMessages() string {
	messages := m.store.Messages()
	if len(messages) == 0 {
		return m.theme.MutedText.Render("No messages yet. Ask the tutor anything.")
	}

	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderMessage(msg))
	}
	return b.String()
}

// renderMessage renders one message with its role label and metadata.
func (m *Model) renderMessage(msg *model.Message) string {
	var b strings.Builder

	label := msg.Role.DisplayName()
	switch msg.Role {
	case model.RoleUser:
		b.WriteString(m.theme.UserLabel.Render(label))
	default:
		b.WriteString(m.theme.AssistantLabel.Render(label))
	}
	if m.showTimestamps {
		b.WriteString(" " + m.theme.MutedText.Render(msg.Timestamp.Format("15:04:05")))
	}
	b.WriteString("\n")

	switch {
	case msg.IsError:
		b.WriteString(m.theme.ErrorText.Render(msg.Content))
	case msg.Role == model.RoleAssistant:
		b.WriteString(strings.TrimRight(m.renderer.Render(msg.Content), "\n"))
	default:
		b.WriteString(m.theme.UserText.Render(msg.Content))
	}

	if msg.HasImage() {
		size := int64(len(msg.Image)) * 3 / 4
		tag := fmt.Sprintf("[image: %s (%s)]", msg.ImageName, util.FormatBytes(size))
		b.WriteString("\n" + m.theme.ImageTag.Render(tag))
	}

	if len(msg.ReferencedDocs) > 0 {
		b.WriteString("\n" + m.theme.MutedText.Render("Sources:"))
		for _, doc := range msg.ReferencedDocs {
			line := fmt.Sprintf("  - %s (%s)", doc.Filename, doc.Subject)
			b.WriteString("\n" + m.theme.MutedText.Render(line))
		}
	}

	if msg.ProcessingTime > 0 {
		note := "answered in " + util.FormatMillis(msg.ProcessingTime.Milliseconds())
		b.WriteString("\n" + m.theme.MutedText.Render(note))
	}

	return b.String()
}

// inputView renders the input area: the attachment prompt when open,
// otherwise the textarea with any staged attachment or spinner line above it.
func (m Model) inputView() string {
	var lines []string

	if m.attaching {
		prompt := m.theme.InputFrame.Width(m.width - 2).Render(m.attachInput.View())
		hint := m.theme.KeyHint.Render("Enter attach · Esc cancel")
		return lipgloss.JoinVertical(lipgloss.Left, prompt, hint)
	}

	if m.attachErr != "" {
		lines = append(lines, m.theme.ErrorText.Render(m.attachErr))
	}
	if m.attachment != nil {
		tag := fmt.Sprintf("attached: %s (%s)", m.attachment.Name, util.FormatBytes(m.attachment.Size))
		lines = append(lines, m.theme.ImageTag.Render(tag)+m.theme.KeyHint.Render("  Esc to remove"))
	}

	if m.store.IsLoading() {
		lines = append(lines, m.spinner.View()+m.theme.MutedText.Render(" Thinking..."))
	}

	lines = append(lines, m.theme.InputFrame.Width(m.width-2).Render(m.input.View()))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

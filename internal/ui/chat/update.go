// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tutor-tui/internal/model"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles events for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.attaching {
			return m.updateAttachPrompt(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()

		case key.Matches(msg, m.keys.Attach):
			if m.store.IsLoading() {
				return m, nil
			}
			m.attaching = true
			m.attachErr = ""
			m.attachInput.SetValue("")
			m.input.Blur()
			return m, m.attachInput.Focus()

		case key.Matches(msg, m.keys.Clear):
			if m.store.IsLoading() {
				return m, nil
			}
			m.store.ClearMessages()
			m.attachment = nil
			m.attachErr = ""
			m.refreshViewport(false)
			return m, nil

		case key.Matches(msg, m.keys.Cancel):
			if m.attachment != nil || m.attachErr != "" {
				m.attachment = nil
				m.attachErr = ""
				return m, nil
			}

		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfViewUp()
			return m, nil

		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfViewDown()
			return m, nil
		}

	case AskResultMsg:
		m.store.SetLoading(false)
		if msg.Err != nil {
			m.store.AddMessage(model.NewErrorMessage(msg.Err))
		} else {
			m.store.AddMessage(model.NewAssistantMessage(msg.Answer))
		}
		m.refreshViewport(true)
		cmds = append(cmds, m.input.Focus())

	case AttachmentLoadedMsg:
		if msg.Err != nil {
			m.attachErr = msg.Err.Error()
		} else {
			m.attachment = msg.Attachment
			m.attachErr = ""
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	cmds = append(cmds, cmd)

	if !m.store.IsLoading() && !m.attaching {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateAttachPrompt handles keys while the attachment path prompt is open.
func (m Model) updateAttachPrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.attaching = false
		m.attachInput.Blur()
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		path := strings.TrimSpace(m.attachInput.Value())
		m.attaching = false
		m.attachInput.Blur()
		m.input.Focus()
		if path == "" {
			return m, nil
		}
		return m, LoadAttachmentCmd(path)
	}

	var cmd tea.Cmd
	m.attachInput, cmd = m.attachInput.Update(msg)
	return m, cmd
}

// submit runs the ask flow: append the user message, mark loading, fire the
// request command. Empty input with no attachment is a no-op, as is any
// submit while a request is in flight. A staged attachment takes precedence
// over text and is cleared here, before the outcome is known.
func (m Model) submit() (Model, tea.Cmd) {
	if m.store.IsLoading() {
		return m, nil
	}

	question := strings.TrimSpace(m.input.Value())
	att := m.attachment

	if question == "" && att == nil {
		return m, nil
	}

	useRAG := m.settings.UseRAG()
	sessionID := m.store.SessionID()

	var userMsg *model.Message
	var cmd tea.Cmd
	if att != nil {
		content := question
		if content == "" {
			content = "(sent an image)"
		}
		userMsg = model.NewUserMessage(content)
		userMsg.Image = att.Base64()
		userMsg.ImageName = att.Name
		cmd = AskImageCmd(m.qa, m.timeout, att, useRAG, sessionID)
	} else {
		userMsg = model.NewUserMessage(question)
		cmd = AskTextCmd(m.qa, m.timeout, question, useRAG, sessionID)
	}

	m.store.AddMessage(userMsg)
	m.store.SetLoading(true)
	m.input.SetValue("")
	m.input.Blur()
	m.attachment = nil
	m.attachErr = ""
	m.refreshViewport(true)

	return m, tea.Batch(cmd, m.spinner.Tick)
}

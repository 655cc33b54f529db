// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"bytes"
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tutor-tui/internal/api"
)

// QAService is the slice of the API client the chat view depends on.
type QAService interface {
	AskProblemText(ctx context.Context, question string, useRAG, useWebSearch bool, sessionID string) (*api.AnswerResponse, error)
	AskProblemImage(ctx context.Context, filename string, image io.Reader, useRAG, useWebSearch bool, sessionID string) (*api.AnswerResponse, error)
}

// AskTextCmd creates a command that sends a text question to the QA service.
func AskTextCmd(qa QAService, timeout time.Duration, question string, useRAG bool, sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		answer, err := qa.AskProblemText(ctx, question, useRAG, false, sessionID)
		return AskResultMsg{Answer: answer, Err: err}
	}
}

// AskImageCmd creates a command that sends an image question to the QA
// service as a multipart upload.
func AskImageCmd(qa QAService, timeout time.Duration, att *Attachment, useRAG bool, sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		answer, err := qa.AskProblemImage(ctx, att.Name, bytes.NewReader(att.Data), useRAG, false, sessionID)
		return AskResultMsg{Answer: answer, Err: err}
	}
}

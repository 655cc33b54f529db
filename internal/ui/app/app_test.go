// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tutor-tui/internal/api"
	"github.com/jeranaias/tutor-tui/internal/config"
	"github.com/jeranaias/tutor-tui/internal/store"
	"github.com/jeranaias/tutor-tui/internal/ui/styles"
)

type stubQA struct{}

func (stubQA) AskProblemText(context.Context, string, bool, bool, string) (*api.AnswerResponse, error) {
	return &api.AnswerResponse{Answer: "ok"}, nil
}

func (stubQA) AskProblemImage(context.Context, string, io.Reader, bool, bool, string) (*api.AnswerResponse, error) {
	return &api.AnswerResponse{Answer: "ok"}, nil
}

type stubDocs struct{}

func (stubDocs) GetDocuments(context.Context, api.ListDocumentsOptions) (*api.DocumentListResponse, error) {
	return &api.DocumentListResponse{}, nil
}

func (stubDocs) DeleteDocument(context.Context, int) error { return nil }

type stubUploader struct{}

func (stubUploader) UploadDocument(context.Context, string, io.Reader) error { return nil }

type stubHealth struct {
	resp *api.HealthResponse
	err  error
}

func (s stubHealth) HealthCheck(context.Context) (*api.HealthResponse, error) {
	return s.resp, s.err
}

func newTestApp(health HealthService) Model {
	settings := store.NewSettings(true)
	return New(Deps{
		Config:    config.Default(),
		Theme:     styles.NewTheme(),
		ChatStore: store.NewChatStore(),
		Settings:  settings,
		QA:        stubQA{},
		Docs:      stubDocs{},
		Uploader:  stubUploader{},
		Health:    health,
	})
}

func TestTabSwitching(t *testing.T) {
	m := newTestApp(nil)
	if m.ActiveTab() != TabChat {
		t.Fatal("chat should be the initial tab")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.ActiveTab() != TabDocuments {
		t.Error("tab should switch to documents")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.ActiveTab() != TabChat {
		t.Error("tab should wrap back to chat")
	}
}

func TestToggleRAGIsGlobal(t *testing.T) {
	settings := store.NewSettings(true)
	m := New(Deps{
		Config:    config.Default(),
		Theme:     styles.NewTheme(),
		ChatStore: store.NewChatStore(),
		Settings:  settings,
		QA:        stubQA{},
		Docs:      stubDocs{},
		Uploader:  stubUploader{},
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)
	if settings.UseRAG() {
		t.Error("ctrl+r should flip the retrieval toggle off")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if settings.UseRAG() != true {
		t.Error("ctrl+r should flip the retrieval toggle back on")
	}
	_ = next
}

func TestHealthNote(t *testing.T) {
	cases := []struct {
		name string
		msg  HealthMsg
		want string
	}{
		{"unreachable", HealthMsg{Err: errors.New("refused")}, "backend unreachable"},
		{"healthy", HealthMsg{Resp: &api.HealthResponse{Status: "healthy"}}, "backend ok"},
		{"degraded", HealthMsg{Resp: &api.HealthResponse{Status: "degraded"}}, "backend degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := healthNote(tc.msg); got != tc.want {
				t.Errorf("healthNote = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHealthProbeCmd(t *testing.T) {
	m := newTestApp(stubHealth{resp: &api.HealthResponse{Status: "healthy"}})

	cmd := m.healthCmd()
	if cmd == nil {
		t.Fatal("expected a health probe command")
	}
	msg, ok := cmd().(HealthMsg)
	if !ok {
		t.Fatalf("unexpected message type %T", msg)
	}
	if msg.Err != nil || msg.Resp.Status != "healthy" {
		t.Errorf("health result = %+v", msg)
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClientWithConfig(&ClientConfig{BaseURL: url})
}

func TestAskProblemText(t *testing.T) {
	var gotBody AskTextRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/ask_problem_text", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(AnswerResponse{
			Answer:           "4",
			ProcessingTimeMs: 120,
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	resp, err := client.AskProblemText(context.Background(), "2+2=?", true, false, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "2+2=?", gotBody.Question)
	assert.True(t, gotBody.UseRAG)
	assert.False(t, gotBody.UseWebSearch)
	assert.Equal(t, "sess-1", gotBody.SessionID)

	assert.Equal(t, "4", resp.Answer)
	assert.Equal(t, int64(120), resp.ProcessingTimeMs)
	assert.Empty(t, resp.ReferencedDocuments)
}

func TestAskProblemTextHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Internal server error"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.AskProblemText(context.Background(), "q", false, false, "")
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeHTTP, clientErr.Type)
	assert.Equal(t, http.StatusInternalServerError, clientErr.StatusCode)
	assert.Equal(t, "Internal server error", clientErr.Message)
	assert.True(t, IsHTTPStatus(err, http.StatusInternalServerError))
}

func TestAskProblemImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ask_problem_image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "problem.png", header.Filename)
		assert.Equal(t, "true", r.FormValue("use_rag"))
		assert.Equal(t, "false", r.FormValue("use_web_search"))
		assert.Equal(t, "sess-2", r.FormValue("session_id"))

		json.NewEncoder(w).Encode(AnswerResponse{Answer: "see diagram"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	resp, err := client.AskProblemImage(context.Background(), "problem.png", strings.NewReader("fake-png-bytes"), true, false, "sess-2")
	require.NoError(t, err)
	assert.Equal(t, "see diagram", resp.Answer)
}

func TestAskProblemImageOmitsEmptySession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		_, ok := r.MultipartForm.Value["session_id"]
		assert.False(t, ok, "session_id field should be absent when empty")
		json.NewEncoder(w).Encode(AnswerResponse{Answer: "ok"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.AskProblemImage(context.Background(), "p.png", strings.NewReader("x"), false, false, "")
	require.NoError(t, err)
}

func TestGetDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/documents", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "processing", q.Get("status"))
		assert.Equal(t, "math", q.Get("subject"))
		assert.Equal(t, "50", q.Get("limit"))
		assert.Equal(t, "0", q.Get("offset"))

		json.NewEncoder(w).Encode(DocumentListResponse{
			Documents: []DocumentInfo{
				{ID: 1, Filename: "algebra.pdf", Status: StatusProcessing, ChunkCount: 0},
			},
			Total: 1,
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	resp, err := client.GetDocuments(context.Background(), ListDocumentsOptions{
		Status:  StatusProcessing,
		Subject: "math",
	})
	require.NoError(t, err)
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, StatusProcessing, resp.Documents[0].Status)
	assert.Equal(t, 1, resp.Total)
}

func TestGetDocumentsNoFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		_, hasStatus := q["status"]
		_, hasSubject := q["subject"]
		assert.False(t, hasStatus, "status param should be absent")
		assert.False(t, hasSubject, "subject param should be absent")
		json.NewEncoder(w).Encode(DocumentListResponse{})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetDocuments(context.Background(), ListDocumentsOptions{})
	require.NoError(t, err)
}

func TestDeleteDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/documents/42", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "deleted"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	require.NoError(t, client.DeleteDocument(context.Background(), 42))
}

func TestDeleteDocumentNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Document 42 not found"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.DeleteDocument(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsHTTPStatus(err, http.StatusNotFound))
	assert.Contains(t, err.Error(), "not found")
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(HealthResponse{
			Status: "healthy",
			Services: ServiceStatus{
				Database: "ok",
				Ollama:   "ok",
				OCR:      "ok",
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	resp, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "ok", resp.Services.Ollama)
}

func TestConnectionError(t *testing.T) {
	// Port 1 is essentially guaranteed to refuse connections.
	client := newTestClient("http://127.0.0.1:1")
	_, err := client.HealthCheck(context.Background())
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeConnection, clientErr.Type)
}

func TestTimestampDecoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"with offset", `"2026-08-28T10:15:00+09:00"`},
		{"without offset", `"2026-08-28T10:15:00"`},
		{"with micros", `"2026-08-28T10:15:00.123456"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.Equal(t, 2026, ts.Year())
			assert.Equal(t, 15, ts.Minute())
		})
	}
}

func TestDocumentStatus(t *testing.T) {
	assert.True(t, StatusProcessing.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusFailed.IsValid())
	assert.False(t, DocumentStatus("queued").IsValid())
	assert.Equal(t, "processing", StatusProcessing.DisplayName())
}

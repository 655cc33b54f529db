// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		data, err := io.ReadAll(file)
		require.NoError(t, err)

		assert.Equal(t, "notes.pdf", header.Filename)
		assert.Equal(t, "pdf-bytes", string(data))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebhookClientWithConfig(&WebhookConfig{URL: srv.URL})
	err := client.UploadDocument(context.Background(), "notes.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
}

func TestUploadDocumentAcceptsAnySuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewWebhookClientWithConfig(&WebhookConfig{URL: srv.URL})
	err := client.UploadDocument(context.Background(), "a.png", strings.NewReader("x"))
	require.NoError(t, err)
}

func TestUploadDocumentFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewWebhookClientWithConfig(&WebhookConfig{URL: srv.URL})
	err := client.UploadDocument(context.Background(), "a.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, IsHTTPStatus(err, http.StatusBadGateway))
}

func TestUploadDocumentConnectionError(t *testing.T) {
	client := NewWebhookClientWithConfig(&WebhookConfig{URL: "http://127.0.0.1:1"})
	err := client.UploadDocument(context.Background(), "a.png", strings.NewReader("x"))
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeConnection, clientErr.Type)
}

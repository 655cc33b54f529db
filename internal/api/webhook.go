// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// =============================================================================
// WEBHOOK CLIENT
// =============================================================================

// WebhookConfig holds configuration for the ingestion webhook client.
type WebhookConfig struct {
	// URL is the full webhook URL, including path.
	URL string

	// Timeout covers the upload transfer only (default: 60s); the
	// ingestion pipeline itself runs asynchronously after acceptance.
	Timeout time.Duration
}

// DefaultWebhookConfig returns the default webhook configuration.
func DefaultWebhookConfig() *WebhookConfig {
	return &WebhookConfig{
		URL:     "http://127.0.0.1:5678/webhook/upload_document",
		Timeout: 60 * time.Second,
	}
}

// WebhookClient uploads documents to the ingestion webhook.
// Upload success means "accepted", not "processed": callers observe the
// processing -> completed/failed transition by polling Client.GetDocuments.
type WebhookClient struct {
	config     *WebhookConfig
	httpClient *http.Client
}

// NewWebhookClient creates a webhook client with default configuration.
func NewWebhookClient() *WebhookClient {
	return NewWebhookClientWithConfig(DefaultWebhookConfig())
}

// NewWebhookClientWithConfig creates a webhook client with custom configuration.
func NewWebhookClientWithConfig(config *WebhookConfig) *WebhookClient {
	if config == nil {
		config = DefaultWebhookConfig()
	}
	if config.URL == "" {
		config.URL = "http://127.0.0.1:5678/webhook/upload_document"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &WebhookClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// UploadDocument sends a document to the ingestion webhook as a multipart
// upload with field name "file". The response body is not consumed beyond
// the status code.
func (c *WebhookClient) UploadDocument(ctx context.Context, filename string, r io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return &ClientError{Type: ErrTypeValidation, Message: "failed to build upload", Cause: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return &ClientError{Type: ErrTypeValidation, Message: "failed to read file", Cause: err}
	}
	if err := mw.Close(); err != nil {
		return &ClientError{Type: ErrTypeValidation, Message: "failed to build upload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, &buf)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ClientError{
			Type:       ErrTypeHTTP,
			Message:    "webhook returned " + resp.Status,
			StatusCode: resp.StatusCode,
		}
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}

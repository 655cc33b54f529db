// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the QA service client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://127.0.0.1:8000).
	// The /api prefix is appended per request.
	BaseURL string

	// Timeout for ask requests (default: 120s — answer generation is
	// LLM-bound and slow).
	Timeout time.Duration
}

// DefaultClientConfig returns the default client configuration.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 120 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the QA service API.
// It is stateless and safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a QA service client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultClientConfig())
}

// NewClientWithConfig creates a QA service client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultClientConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// apiURL joins the base URL, the /api prefix and the endpoint path.
func (c *Client) apiURL(path string) string {
	return c.config.BaseURL + "/api" + path
}

// =============================================================================
// ASK OPERATIONS
// =============================================================================

// AskProblemText sends a text question and returns the generated answer.
// useRAG asks the backend to consult ingested documents; sessionID scopes
// the conversation context on the backend side.
func (c *Client) AskProblemText(ctx context.Context, question string, useRAG, useWebSearch bool, sessionID string) (*AnswerResponse, error) {
	reqBody := AskTextRequest{
		Question:     question,
		UseRAG:       useRAG,
		UseWebSearch: useWebSearch,
		SessionID:    sessionID,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL("/ask_problem_text"), bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	return decodeAnswer(resp)
}

// AskProblemImage sends an image question as a multipart upload.
// The caller is responsible for supplying actual image data; the client does
// not inspect the content.
func (c *Client) AskProblemImage(ctx context.Context, filename string, image io.Reader, useRAG, useWebSearch bool, sessionID string) (*AnswerResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeValidation, Message: "failed to build upload", Cause: err}
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, &ClientError{Type: ErrTypeValidation, Message: "failed to read image", Cause: err}
	}

	mw.WriteField("use_rag", strconv.FormatBool(useRAG))
	mw.WriteField("use_web_search", strconv.FormatBool(useWebSearch))
	if sessionID != "" {
		mw.WriteField("session_id", sessionID)
	}
	if err := mw.Close(); err != nil {
		return nil, &ClientError{Type: ErrTypeValidation, Message: "failed to build upload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL("/ask_problem_image"), &buf)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	return decodeAnswer(resp)
}

// decodeAnswer decodes an ask response or its error envelope.
func decodeAnswer(resp *http.Response) (*AnswerResponse, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, httpError(resp)
	}

	var result AnswerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return &result, nil
}

// =============================================================================
// DOCUMENT OPERATIONS
// =============================================================================

// GetDocuments retrieves a page of documents, optionally filtered by status
// and subject. Filter values are passed through to the backend verbatim.
func (c *Client) GetDocuments(ctx context.Context, opts ListDocumentsOptions) (*DocumentListResponse, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultListLimit
	}

	params := url.Values{}
	if opts.Status != "" {
		params.Set("status", string(opts.Status))
	}
	if opts.Subject != "" {
		params.Set("subject", opts.Subject)
	}
	params.Set("limit", strconv.Itoa(opts.Limit))
	params.Set("offset", strconv.Itoa(opts.Offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL("/documents")+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpError(resp)
	}

	var result DocumentListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return &result, nil
}

// DeleteDocument removes a document and its chunks on the backend.
func (c *Client) DeleteDocument(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apiURL("/documents/"+strconv.Itoa(id)), nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return httpError(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// HealthCheck probes the backend's subsystems (database, inference, OCR).
// Purely informational; callers decide what to do with a degraded state.
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL("/health"), nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpError(resp)
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return &result, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// httpError builds a ClientError from a non-2xx response, pulling the
// FastAPI "detail" message out of the body when present.
func httpError(resp *http.Response) *ClientError {
	msg := "backend returned " + resp.Status

	var envelope backendError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Detail != "" {
		msg = envelope.Detail
	}

	return &ClientError{
		Type:       ErrTypeHTTP,
		Message:    msg,
		StatusCode: resp.StatusCode,
	}
}

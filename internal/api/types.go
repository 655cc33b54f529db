// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"strings"
	"time"
)

// =============================================================================
// ASK TYPES
// =============================================================================

// AskTextRequest is the JSON body for POST /api/ask_problem_text.
type AskTextRequest struct {
	Question     string `json:"question"`
	UseRAG       bool   `json:"use_rag"`
	UseWebSearch bool   `json:"use_web_search"`
	SessionID    string `json:"session_id,omitempty"`
}

// ReferencedDocument is a source excerpt the backend consulted for an answer.
type ReferencedDocument struct {
	DocumentID   int    `json:"document_id"`
	Filename     string `json:"filename"`
	Subject      string `json:"subject"`
	ChunkContent string `json:"chunk_content"`
}

// AnswerResponse is the response for both ask endpoints. Answer is Markdown.
type AnswerResponse struct {
	Answer              string               `json:"answer"`
	ReferencedDocuments []ReferencedDocument `json:"referenced_documents"`
	ProcessingTimeMs    int64                `json:"processing_time_ms"`
}

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// DocumentStatus is the ingestion-pipeline state of a document.
// The set is closed; consumers switch exhaustively over the three states.
type DocumentStatus string

const (
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusFailed     DocumentStatus = "failed"
)

// IsValid reports whether s is one of the known states.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// DisplayName returns a short label for the status.
func (s DocumentStatus) DisplayName() string {
	switch s {
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return string(s)
	}
}

// Timestamp handles the backend's datetime serialization, which may or may
// not carry a timezone offset.
type Timestamp struct {
	time.Time
}

// timestampLayouts are tried in order when decoding.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON decodes an ISO-8601 string, with or without offset.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// MarshalJSON encodes as RFC 3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// DocumentInfo describes a document known to the ingestion pipeline.
// The backend owns all state transitions; the front end only displays them.
type DocumentInfo struct {
	ID         int            `json:"id"`
	Filename   string         `json:"filename"`
	Subject    string         `json:"subject"`
	Status     DocumentStatus `json:"status"`
	CreatedAt  Timestamp      `json:"created_at"`
	ChunkCount int            `json:"chunk_count"`
}

// DocumentListResponse is the response for GET /api/documents.
type DocumentListResponse struct {
	Documents []DocumentInfo `json:"documents"`
	Total     int            `json:"total"`
}

// ListDocumentsOptions holds the optional filters for GetDocuments.
// Zero values mean "no filter"; Limit defaults to DefaultListLimit.
type ListDocumentsOptions struct {
	Status  DocumentStatus
	Subject string
	Limit   int
	Offset  int
}

// DefaultListLimit is the page size used when none is given.
const DefaultListLimit = 50

// =============================================================================
// HEALTH TYPES
// =============================================================================

// ServiceStatus reports the state of the backend's subsystems.
type ServiceStatus struct {
	Database string `json:"database"`
	Ollama   string `json:"ollama"`
	OCR      string `json:"ocr"`
}

// HealthResponse is the response for GET /api/health.
type HealthResponse struct {
	Status   string        `json:"status"`
	Services ServiceStatus `json:"services"`
}

// =============================================================================
// BACKEND ERROR BODY
// =============================================================================

// backendError is the FastAPI error envelope.
type backendError struct {
	Detail string `json:"detail"`
}

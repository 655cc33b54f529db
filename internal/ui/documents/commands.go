// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package documents

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tutor-tui/internal/api"
)

// DocumentService is the slice of the API client the documents view depends on.
type DocumentService interface {
	GetDocuments(ctx context.Context, opts api.ListDocumentsOptions) (*api.DocumentListResponse, error)
	DeleteDocument(ctx context.Context, id int) error
}

// UploadService is the slice of the webhook client the documents view
// depends on.
type UploadService interface {
	UploadDocument(ctx context.Context, filename string, r io.Reader) error
}

// LoadDocumentsCmd creates a command that fetches the document list. The
// sequence number is echoed back in the result so stale responses can be
// discarded.
func LoadDocumentsCmd(svc DocumentService, timeout time.Duration, opts api.ListDocumentsOptions, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := svc.GetDocuments(ctx, opts)
		return DocumentsLoadedMsg{Seq: seq, Resp: resp, Err: err}
	}
}

// DeleteDocumentCmd creates a command that deletes one document.
func DeleteDocumentCmd(svc DocumentService, timeout time.Duration, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := svc.DeleteDocument(ctx, id)
		return DeleteResultMsg{ID: id, Err: err}
	}
}

// UploadDocumentCmd creates a command that validates a file locally and, only
// if it passes, streams it to the ingestion webhook. Validation failures are
// reported without touching the network.
func UploadDocumentCmd(uploader UploadService, timeout time.Duration, path string, allowedExts []string, maxBytes int64) tea.Cmd {
	return func() tea.Msg {
		name := filepath.Base(path)

		if err := validateUploadPath(path, allowedExts, maxBytes); err != nil {
			return UploadResultMsg{Name: name, Err: err}
		}

		f, err := os.Open(path)
		if err != nil {
			return UploadResultMsg{Name: name, Err: &api.ClientError{
				Type:    api.ErrTypeValidation,
				Message: "cannot read file",
				Cause:   err,
			}}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return UploadResultMsg{Name: name, Err: uploader.UploadDocument(ctx, name, f)}
	}
}

// validateUploadPath enforces the extension allowlist and the size limit
// before any network traffic.
func validateUploadPath(path string, allowedExts []string, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(path))
	allowed := false
	for _, e := range allowedExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return &api.ClientError{
			Type: api.ErrTypeValidation,
			Message: fmt.Sprintf("unsupported file type %q (allowed: %s)",
				ext, strings.Join(allowedExts, ", ")),
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return &api.ClientError{
			Type:    api.ErrTypeValidation,
			Message: "cannot read file",
			Cause:   err,
		}
	}
	if info.Size() > maxBytes {
		return &api.ClientError{
			Type: api.ErrTypeValidation,
			Message: fmt.Sprintf("file exceeds the %d MB upload limit",
				maxBytes/(1024*1024)),
		}
	}
	return nil
}

// reloadAfter schedules a deferred list reload.
func reloadAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return reloadTickMsg{}
	})
}

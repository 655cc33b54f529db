// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tutor-tui/internal/api"
)

// imageExtensions are the attachment types the backend's OCR path accepts.
var imageExtensions = []string{".png", ".jpg", ".jpeg"}

// Attachment is an image staged for the next submit.
type Attachment struct {
	Path string
	Name string
	Size int64
	Data []byte
}

// Base64 returns the image content encoded for inline embedding in the
// user message.
func (a *Attachment) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// validateImagePath rejects non-image paths before any file read.
// Supplying actual image content is the caller's responsibility; the API
// client does not inspect it.
func validateImagePath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range imageExtensions {
		if ext == allowed {
			return nil
		}
	}
	return &api.ClientError{
		Type:    api.ErrTypeValidation,
		Message: "not an image file (allowed: png, jpg, jpeg)",
	}
}

// LoadAttachmentCmd reads an image file for attachment. The read happens in
// the command goroutine so the UI stays responsive.
func LoadAttachmentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if err := validateImagePath(path); err != nil {
			return AttachmentLoadedMsg{Err: err}
		}

		info, err := os.Stat(path)
		if err != nil {
			return AttachmentLoadedMsg{Err: &api.ClientError{
				Type:    api.ErrTypeValidation,
				Message: "cannot read file",
				Cause:   err,
			}}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return AttachmentLoadedMsg{Err: &api.ClientError{
				Type:    api.ErrTypeValidation,
				Message: "cannot read file",
				Cause:   err,
			}}
		}

		return AttachmentLoadedMsg{Attachment: &Attachment{
			Path: path,
			Name: filepath.Base(path),
			Size: info.Size(),
			Data: data,
		}}
	}
}

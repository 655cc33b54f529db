// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/jeranaias/tutor-tui/internal/api"

// AskResultMsg delivers the outcome of an ask request, success or failure.
type AskResultMsg struct {
	Answer *api.AnswerResponse
	Err    error
}

// AttachmentLoadedMsg delivers the result of reading an image file from disk
// for attachment.
type AttachmentLoadedMsg struct {
	Attachment *Attachment
	Err        error
}

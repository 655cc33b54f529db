// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package documents

import "github.com/jeranaias/tutor-tui/internal/api"

// DocumentsLoadedMsg delivers the result of a tagged list load. Seq echoes
// the sequence number of the request that produced it; the model applies the
// response only when Seq matches its latest request.
type DocumentsLoadedMsg struct {
	Seq  uint64
	Resp *api.DocumentListResponse
	Err  error
}

// UploadResultMsg delivers the outcome of an upload attempt, including
// client-side validation failures that never reached the network.
type UploadResultMsg struct {
	Name string
	Err  error
}

// DeleteResultMsg delivers the outcome of a delete request.
type DeleteResultMsg struct {
	ID  int
	Err error
}

// reloadTickMsg fires a deferred list reload after an accepted upload, and
// again while any document is still processing.
type reloadTickMsg struct{}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package documents provides the document-management view for the tutor TUI.
//
// The view lists documents known to the ingestion pipeline, uploads new files
// to the ingestion webhook, and deletes documents through the API. It follows
// the same file split as the chat view (model / update / view / keys /
// messages / commands).
//
// List loads are tagged with a monotonically increasing sequence number.
// Only the response matching the most recent request is applied; responses
// from superseded requests are discarded, so a slow earlier load can never
// overwrite a newer one.
//
// Uploads are accepted by the webhook before processing finishes, so the
// view schedules a reload shortly after an accepted upload and keeps polling
// while any document is still processing.
package documents

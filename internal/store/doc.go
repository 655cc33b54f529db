// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the in-memory application state.
//
// ChatStore keeps the conversation history, the loading flag and the backend
// session identifier. Settings keeps the retrieval-augmentation toggle. Both
// are explicit containers constructed in main and injected into the views;
// their lifetime is the process lifetime and nothing is persisted.
//
// The stores are mutex-guarded because Bubble Tea commands run off the
// update loop.
package store

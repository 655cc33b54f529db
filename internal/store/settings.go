// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import "sync"

// Settings holds the retrieval-augmentation toggle. It lives for the process
// lifetime and is read by the chat view when building ask requests; the
// document manager does not consult it.
type Settings struct {
	mu     sync.Mutex
	useRAG bool
}

// NewSettings creates a settings store with the given initial RAG state.
func NewSettings(useRAG bool) *Settings {
	return &Settings{useRAG: useRAG}
}

// UseRAG reports whether retrieval augmentation is requested.
func (s *Settings) UseRAG() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.useRAG
}

// ToggleRAG flips the retrieval toggle. No validation, no side effects.
func (s *Settings) ToggleRAG() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.useRAG = !s.useRAG
}

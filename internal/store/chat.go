// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jeranaias/tutor-tui/internal/model"
)

// =============================================================================
// CHAT STORE
// =============================================================================

// ChatStore holds the conversation history, the loading flag and the current
// backend session identifier.
//
// The session identifier scopes the conversation's context on the backend.
// It is generated at construction and regenerated whenever the history is
// cleared, so backend context never leaks across cleared conversations.
type ChatStore struct {
	mu        sync.Mutex
	messages  []*model.Message
	loading   bool
	sessionID string
}

// NewChatStore creates an empty chat store with a fresh session identifier.
func NewChatStore() *ChatStore {
	return &ChatStore{
		messages:  make([]*model.Message, 0),
		sessionID: newSessionID(),
	}
}

// AddMessage appends a message to the end of the history. The content is not
// validated and no network call is triggered.
func (s *ChatStore) AddMessage(msg *model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the message sequence in insertion order.
func (s *ChatStore) Messages() []*model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// MessageCount returns the number of messages in the history.
func (s *ChatStore) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// SetLoading sets the flag the view uses to disable input while a request is
// in flight. It is set true before a request starts and false after it
// settles, success or failure.
func (s *ChatStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// IsLoading reports whether a request is in flight.
func (s *ChatStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SessionID returns the current session identifier.
func (s *ChatStore) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// ClearMessages empties the history and issues a fresh session identifier.
// Both happen under one lock: no reader can observe the old identifier with
// an empty history or the other way around.
func (s *ChatStore) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make([]*model.Message, 0)
	s.sessionID = newSessionID()
}

// newSessionID creates an opaque session identifier.
func newSessionID() string {
	return uuid.NewString()
}

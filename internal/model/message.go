// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/tutor-tui/internal/api"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message. The set is closed; rendering code
// switches exhaustively over the two roles.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Tutor"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in the conversation.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content (Markdown for assistant messages)
	Content string `json:"content"`

	// Optional attached image, base64-encoded inline
	Image     string `json:"image,omitempty"`
	ImageName string `json:"image_name,omitempty"`

	// Sources the backend consulted (assistant messages with RAG)
	ReferencedDocs []api.ReferencedDocument `json:"referenced_docs,omitempty"`

	// Backend processing duration (assistant messages)
	ProcessingTime time.Duration `json:"processing_time_ns,omitempty"`

	// IsError marks a synthetic assistant message that carries a failure
	// instead of an answer.
	IsError bool `json:"is_error,omitempty"`
}

// NewUserMessage creates a user message with a generated ID.
func NewUserMessage(content string) *Message {
	return &Message{
		ID:        generateID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates an assistant message from a backend answer.
func NewAssistantMessage(answer *api.AnswerResponse) *Message {
	return &Message{
		ID:             generateID(),
		Role:           RoleAssistant,
		Content:        answer.Answer,
		ReferencedDocs: answer.ReferencedDocuments,
		ProcessingTime: time.Duration(answer.ProcessingTimeMs) * time.Millisecond,
		Timestamp:      time.Now(),
	}
}

// NewErrorMessage creates a synthetic assistant message carrying an error.
// The failed user message stays in the history; this follows it.
func NewErrorMessage(err error) *Message {
	return &Message{
		ID:        generateID(),
		Role:      RoleAssistant,
		Content:   "An error occurred: " + err.Error(),
		Timestamp: time.Now(),
		IsError:   true,
	}
}

// HasImage reports whether the message carries an attached image.
func (m *Message) HasImage() bool {
	return m.Image != ""
}

// Preview returns a truncated single-line preview of the message content.
func (m *Message) Preview(maxRunes int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxRunes {
		return m.Content
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// generateID creates a unique message ID.
func generateID() string {
	return "msg_" + uuid.NewString()
}

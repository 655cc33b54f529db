// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tutor-tui/internal/model"
)

func TestAddMessagePreservesOrder(t *testing.T) {
	s := NewChatStore()

	for i := 0; i < 10; i++ {
		s.AddMessage(model.NewUserMessage(strconv.Itoa(i)))
	}

	msgs := s.Messages()
	require.Len(t, msgs, 10)
	for i, msg := range msgs {
		assert.Equal(t, strconv.Itoa(i), msg.Content, "message %d out of order", i)
	}
}

func TestClearMessagesIssuesFreshSession(t *testing.T) {
	s := NewChatStore()
	s.AddMessage(model.NewUserMessage("hello"))

	before := s.SessionID()
	require.NotEmpty(t, before)

	s.ClearMessages()

	assert.Empty(t, s.Messages())
	assert.NotEqual(t, before, s.SessionID(), "session id must change on clear")
	assert.NotEmpty(t, s.SessionID())
}

func TestClearMessagesIsAtomic(t *testing.T) {
	s := NewChatStore()
	for i := 0; i < 100; i++ {
		s.AddMessage(model.NewUserMessage("x"))
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.ClearMessages()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.AddMessage(model.NewUserMessage("y"))
			_ = s.Messages()
			_ = s.SessionID()
		}
	}()

	wg.Wait()
}

func TestLoadingFlag(t *testing.T) {
	s := NewChatStore()
	assert.False(t, s.IsLoading())

	s.SetLoading(true)
	assert.True(t, s.IsLoading())

	s.SetLoading(false)
	assert.False(t, s.IsLoading())
}

func TestMessagesReturnsCopy(t *testing.T) {
	s := NewChatStore()
	s.AddMessage(model.NewUserMessage("a"))

	msgs := s.Messages()
	msgs[0] = model.NewUserMessage("tampered")

	assert.Equal(t, "a", s.Messages()[0].Content)
}

func TestSessionIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s := NewChatStore()
		id := s.SessionID()
		require.False(t, seen[id], "duplicate session id %q", id)
		seen[id] = true
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages.
//
// A Message is immutable once created: the chat store appends messages to an
// ordered sequence and never mutates or reorders them, so insertion order is
// the conversational chronological order.
package model

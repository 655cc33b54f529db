// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the tutor TUI.
//
// The view composes the chat store, the settings store, the QA client and
// the Markdown renderer into a conversational interface. It is a Bubble Tea
// model split across files in the usual shape:
//
//   - model.go    — Model struct and constructor
//   - update.go   — event handling and the submit flow
//   - view.go     — rendering
//   - keys.go     — key bindings
//   - messages.go — Bubble Tea message types
//   - commands.go — tea.Cmd constructors wrapping network calls
//   - attach.go   — image attachment loading and validation
//
// The submit flow is: append the user message, set loading, fire the ask
// command; on completion append either the assistant answer or a synthetic
// assistant message carrying the error text. The user message is never
// rolled back, and a pending image attachment is cleared whether the
// request succeeds or fails.
package chat

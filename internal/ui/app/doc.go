// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the top-level Bubble Tea model for the tutor TUI.
//
// The shell owns the tab bar (Chat / Documents), the header with the
// retrieval toggle, and the status bar with key hints. It routes events to
// whichever view is active and broadcasts window sizes and async results to
// both. A single health probe runs at startup; its result is informational
// and never blocks the UI.
package app

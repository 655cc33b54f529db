// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the tutor TUI.
//
// A Theme bundles every lipgloss style the views need. It is built once at
// startup after probing the terminal's color capability with termenv and is
// injected into each view.
package styles

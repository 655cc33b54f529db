// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown renders assistant answers for terminal display.
//
// Rendering is pure: the same input string always produces the same output
// for a given width, there is no state and no I/O. The primary path uses
// glamour; if the glamour renderer cannot be constructed, a fallback path
// renders fenced code blocks through chroma and leaves prose untouched.
// Inline `$...$` math notation passes through verbatim either way.
package markdown

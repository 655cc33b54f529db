// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string and formatting helpers for the TUI.
//
// The helpers here are rune- and width-aware so that truncation never splits
// a multi-byte UTF-8 character and CJK text lines up in fixed-width columns.
package util

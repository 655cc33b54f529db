// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"zero limit", "hello", 0, ""},
		{"tiny limit keeps no ellipsis", "hello", 2, "he"},
		{"multibyte not split", "日本語のテキスト", 5, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.input, tt.maxRunes); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	// CJK characters occupy two columns each.
	got := TruncateWidth("日本語", 4)
	if got != "..." && got != "日..." {
		// runewidth trims to fit: 2 cols for 日 + 3 for ellipsis exceeds 4,
		// so only the ellipsis remains within budget.
		t.Errorf("TruncateWidth = %q", got)
	}

	if got := TruncateWidth("abc", 10); got != "abc" {
		t.Errorf("TruncateWidth(abc, 10) = %q, want abc", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{104857600, "100.0 MiB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatMillis(t *testing.T) {
	if got := FormatMillis(1234); got != "1.23s" {
		t.Errorf("FormatMillis(1234) = %q, want 1.23s", got)
	}
	if got := FormatMillis(120); got != "0.12s" {
		t.Errorf("FormatMillis(120) = %q, want 0.12s", got)
	}
}

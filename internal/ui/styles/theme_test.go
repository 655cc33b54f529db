// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Styles must render without panicking, whatever the terminal profile.
	out := theme.HeaderTitle.Render("tutor")
	if out == "" {
		t.Error("HeaderTitle rendered empty output")
	}
}

func TestStatusStyle(t *testing.T) {
	theme := NewTheme()

	for _, status := range []string{"processing", "completed", "failed", "unknown"} {
		out := theme.StatusStyle(status).Render(status)
		if out == "" {
			t.Errorf("StatusStyle(%q) rendered empty output", status)
		}
	}
}

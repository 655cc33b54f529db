// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import "testing"

func TestSettingsToggle(t *testing.T) {
	s := NewSettings(true)

	if !s.UseRAG() {
		t.Error("initial UseRAG should be true")
	}

	s.ToggleRAG()
	if s.UseRAG() {
		t.Error("UseRAG should be false after one toggle")
	}

	s.ToggleRAG()
	if !s.UseRAG() {
		t.Error("UseRAG should be true after two toggles")
	}
}

func TestSettingsDefaultOff(t *testing.T) {
	s := NewSettings(false)
	if s.UseRAG() {
		t.Error("initial UseRAG should be false")
	}
}

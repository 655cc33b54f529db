// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/jeranaias/tutor-tui/internal/api"

// HealthMsg delivers the result of the startup health probe.
type HealthMsg struct {
	Resp *api.HealthResponse
	Err  error
}

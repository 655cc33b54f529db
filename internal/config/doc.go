// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for tutor-tui.
//
// Configuration comes from three layers, in order of precedence:
//
//   - Environment variables (TUTOR_API_URL, TUTOR_WEBHOOK_URL)
//   - ~/.tutor/config.toml (or the path given with --config)
//   - Built-in defaults pointing at local loopback services
//
// The loaded Config is constructed once in main and injected into the
// components that need it; there is no package-level global.
package config

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP clients for the tutor backend.
//
// Two independent surfaces are covered:
//
//   - Client talks to the QA service (ask endpoints, document listing and
//     deletion, health check) under <base>/api.
//   - WebhookClient talks to the ingestion webhook, which accepts document
//     uploads and processes them asynchronously.
//
// Both clients are stateless; every call is independent, carries a
// context.Context, and performs no retries. Errors are surfaced as
// *ClientError with a coarse type (validation, connection, timeout, HTTP)
// for the view layer to turn into user-visible messages.
package api

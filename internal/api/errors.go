// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeValidation
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeHTTP
	ErrTypeInvalidResponse
)

// ClientError represents an error from the backend clients.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int // Set for ErrTypeHTTP
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Sentinel errors for easy checking.
var (
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "backend is unreachable"}
)

// wrapTransportError classifies a transport-level failure from net/http.
func wrapTransportError(err error) *ClientError {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return &ClientError{Type: ErrTypeConnection, Message: "backend is unreachable", Cause: err}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return false
}

// IsValidation checks if an error is a client-side validation error.
func IsValidation(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeValidation
	}
	return false
}

// IsHTTPStatus checks if an error is an HTTP error with the given status.
func IsHTTPStatus(err error, status int) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeHTTP && clientErr.StatusCode == status
	}
	return false
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bitrules

package bitrules

import "errors"

// Sentinel errors for bitrules operations.
var (
	// ErrInvalidRule indicates malformed or unsupported rule input.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidPattern indicates malformed or unsupported bit pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidEntry indicates malformed or unsupported table entry input.
	ErrInvalidEntry = errors.New("invalid entry")
)

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bitrules

package bitrules

import "golang.org/x/exp/constraints"

// ExactPattern builds a pattern of "1"/"0" tokens encoding value's low bits.
//
// The pattern has exactly width tokens, most-significant-bit first, taken
// from the low width bits of value. Width values <= 0 produce an empty
// pattern; widths past T's bit size continue with "0" tokens, since the
// missing high bits of value read as zero.
func ExactPattern[T constraints.Unsigned](value T, width int) Pattern {
	if width <= 0 {
		return Pattern{}
	}

	pattern := make(Pattern, width)
	for i := width - 1; i >= 0; i-- {
		if value&1 == 1 {
			pattern[i] = TokenOne
		} else {
			pattern[i] = TokenZero
		}

		value >>= 1
	}

	return pattern
}

// MaskedPattern builds a pattern from the (value, care) pair form used in
// hardware documentation and instruction set listings.
//
// The pattern has exactly width tokens, most-significant-bit first. Bit i
// of care decides whether the i-th-from-the-right token is pinned: pinned
// tokens encode the matching bit of value, unpinned tokens are "_". Width
// values <= 0 produce an empty pattern.
func MaskedPattern[T constraints.Unsigned](value, care T, width int) Pattern {
	if width <= 0 {
		return Pattern{}
	}

	pattern := make(Pattern, width)
	for i := width - 1; i >= 0; i-- {
		switch {
		case care&1 == 0:
			pattern[i] = TokenDontCare
		case value&1 == 1:
			pattern[i] = TokenOne
		default:
			pattern[i] = TokenZero
		}

		care >>= 1
		value >>= 1
	}

	return pattern
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bitrules

package bitrules

import (
	"fmt"
	"strings"
)

// Token represents one bit pattern symbol.
type Token uint8

const (
	// TokenUnknown is unset/invalid token placeholder.
	TokenUnknown Token = iota
	// TokenDontCare matches both 0 and 1 bits, written as "_".
	TokenDontCare
	// TokenZero matches 0 bits only, written as "0".
	TokenZero
	// TokenOne matches 1 bits only, written as "1".
	TokenOne
)

// Pattern is an ordered token sequence, most-significant-bit first.
//
// Length is arbitrary and is not tied to any integer width at authoring
// time: width handling happens when the pattern is compiled against a
// concrete unsigned type (see CompileMask).
type Pattern []Token

// Action represents a decision action of one rule.
type Action uint8

const (
	// ActionUnknown is unset/invalid action placeholder.
	ActionUnknown Action = iota
	// ActionExclude means matching value should be excluded.
	ActionExclude
	// ActionInclude means matching value should be included.
	ActionInclude
)

// Rule is one user-visible bit rule.
type Rule struct {
	// Pattern is a bit pattern in "1 0 _" notation, most-significant-bit first.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Action is a decision action applied when the rule matches.
	Action Action `json:"action" yaml:"action"`
}

// MatcherOptions controls matcher behavior.
type MatcherOptions struct {
	// DefaultAction is applied when no rule matched.
	DefaultAction Action `json:"default_action,omitempty" yaml:"default_action,omitempty"`
}

// MatchResult is a deterministic decision produced by matcher.
type MatchResult struct {
	// Included reports final include decision.
	Included bool `json:"included" yaml:"included"`
	// Matched reports whether at least one rule matched.
	Matched bool `json:"matched" yaml:"matched"`
	// RuleIndex is the matched rule index in matcher input order, -1 when no match.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
}

// Validate reports the first token outside the three recognized symbols.
func (p Pattern) Validate() error {
	for i, tok := range p {
		if !tok.valid() {
			return fmt.Errorf("%w: unsupported token %d at position %d", ErrInvalidPattern, tok, i)
		}
	}

	return nil
}

// Specified returns the number of non-don't-care tokens in the pattern.
func (p Pattern) Specified() int {
	n := 0
	for _, tok := range p {
		if tok == TokenZero || tok == TokenOne {
			n++
		}
	}

	return n
}

// String renders the pattern in canonical whitespace-separated "1 0 _" form.
//
// The result round-trips through ParsePattern for valid patterns; invalid
// tokens render as "?".
func (p Pattern) String() string {
	if len(p) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(p)*2 - 1)

	for i, tok := range p {
		if i != 0 {
			b.WriteByte(' ')
		}

		switch tok {
		case TokenDontCare:
			b.WriteByte('_')
		case TokenZero:
			b.WriteByte('0')
		case TokenOne:
			b.WriteByte('1')
		default:
			b.WriteByte('?')
		}
	}

	return b.String()
}

// String returns the source symbol for the token.
func (t Token) String() string {
	switch t {
	case TokenDontCare:
		return "_"
	case TokenZero:
		return "0"
	case TokenOne:
		return "1"
	default:
		return fmt.Sprintf("Token(%d)", uint8(t))
	}
}

// applyDefaults fills zero-valued options with defaults.
func (opts *MatcherOptions) applyDefaults() {
	if !opts.DefaultAction.valid() {
		opts.DefaultAction = ActionInclude
	}
}

// valid reports whether action value is supported.
func (a Action) valid() bool {
	return a == ActionExclude || a == ActionInclude
}

// valid reports whether token value is supported.
func (t Token) valid() bool {
	return t == TokenDontCare || t == TokenZero || t == TokenOne
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bitrules

package bitrules

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// compiledRule is matcher-internal compiled representation of one rule.
type compiledRule[T constraints.Unsigned] struct {
	// mask is the compiled pattern mask pair.
	mask Mask[T]
	// source is original source rule.
	source Rule
}

// Matcher evaluates value decisions against compiled ordered rules.
type Matcher[T constraints.Unsigned] struct {
	compiled      []compiledRule[T]
	defaultAction Action
}

// NewMatcher compiles ordered rules into matcher.
func NewMatcher[T constraints.Unsigned](rules []Rule, opts MatcherOptions) (*Matcher[T], error) {
	opts.applyDefaults()

	compiled := make([]compiledRule[T], 0, len(rules))
	for _, rule := range rules {
		cr, err := compileRule[T](rule)
		if err != nil {
			return nil, err
		}

		compiled = append(compiled, cr)
	}

	return &Matcher[T]{
		compiled:      compiled,
		defaultAction: opts.DefaultAction,
	}, nil
}

// compileRule compiles one source rule into its mask pair form.
func compileRule[T constraints.Unsigned](rule Rule) (compiledRule[T], error) {
	if !rule.Action.valid() {
		return compiledRule[T]{}, fmt.Errorf("%w: unsupported action %d", ErrInvalidRule, rule.Action)
	}

	pattern, err := ParsePattern(rule.Pattern)
	if err != nil {
		return compiledRule[T]{}, err
	}

	return compiledRule[T]{
		mask:   CompileMask[T](pattern),
		source: rule,
	}, nil
}

// Decide returns deterministic include/exclude decision for one value.
//
// Decision policy:
// - last matched rule wins
// - if no rule matched, default action is used
func (m *Matcher[T]) Decide(value T) MatchResult {
	res := MatchResult{
		Included:  m.defaultAction == ActionInclude,
		Matched:   false,
		RuleIndex: -1,
	}

	for i := range m.compiled {
		if !m.compiled[i].mask.Match(value) {
			continue
		}

		res.Matched = true
		res.RuleIndex = i
		res.Included = m.compiled[i].source.Action == ActionInclude
	}

	return res
}

// Included reports whether value is included by decision policy.
func (m *Matcher[T]) Included(value T) bool {
	return m.Decide(value).Included
}

// Excluded reports whether value is excluded by decision policy.
func (m *Matcher[T]) Excluded(value T) bool {
	return !m.Decide(value).Included
}

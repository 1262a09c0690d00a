// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bitrules

package bitrules

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsePattern parses one bit pattern written in "1 0 _" notation.
//
// Symbols are ordered most-significant-bit first and may be separated by
// spaces and tabs; separators are optional, so "1 1 1 _ _ 0 0 0" and
// "111__000" produce the same pattern. Zero symbols produce an empty
// pattern that matches every value. Any other byte is rejected with
// ErrInvalidPattern.
func ParsePattern(src string) (Pattern, error) {
	pattern := make(Pattern, 0, len(src))

	for i := 0; i < len(src); i++ {
		switch src[i] {
		case ' ', '\t':
			continue
		case '_':
			pattern = append(pattern, TokenDontCare)
		case '0':
			pattern = append(pattern, TokenZero)
		case '1':
			pattern = append(pattern, TokenOne)
		default:
			return nil, fmt.Errorf("%w: unsupported symbol %q at position %d", ErrInvalidPattern, src[i], i)
		}
	}

	return pattern, nil
}

// MustParsePattern is like ParsePattern but panics on malformed input.
//
// It is intended for pattern literals in package-level declarations, where
// a malformed pattern should stop the program at initialization, before any
// match runs.
func MustParsePattern(src string) Pattern {
	pattern, err := ParsePattern(src)
	if err != nil {
		panic(`bitrules: MustParsePattern(` + strconv.Quote(src) + `): ` + err.Error())
	}

	return pattern
}

// ParseRules parses bit rules from reader.
//
// Semantics:
// - blank lines and comments are ignored
// - "!" creates include rule
// - plain lines create exclude rule
//
// Rule patterns are validated when a matcher is compiled, not here.
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		action := ActionExclude
		if strings.HasPrefix(line, "!") {
			action = ActionInclude
			line = strings.TrimSpace(line[1:])
		}

		if line == "" {
			continue
		}

		rules = append(rules, Rule{
			Action:  action,
			Pattern: line,
		})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

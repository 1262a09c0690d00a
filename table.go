// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bitrules

package bitrules

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Entry is one named pattern in a decode table.
type Entry struct {
	// Name identifies the entry, for example an instruction mnemonic.
	Name string `json:"name" yaml:"name"`
	// Pattern is a bit pattern in "1 0 _" notation, most-significant-bit first.
	Pattern string `json:"pattern" yaml:"pattern"`
}

// compiledEntry is table-internal compiled representation of one entry.
type compiledEntry[T constraints.Unsigned] struct {
	// mask is the compiled pattern mask pair.
	mask Mask[T]
	// source is original source entry.
	source Entry
}

// Table resolves integer values to named patterns in entry order.
//
// A table models a decode table: ordered encodings consulted
// first-match-wins, the way instruction set listings order them
// most-specific first. This is the opposite policy from Matcher, whose
// last-match-wins rule chains follow ignore-file conventions.
type Table[T constraints.Unsigned] struct {
	compiled []compiledEntry[T]
}

// NewTable compiles ordered entries into a lookup table.
func NewTable[T constraints.Unsigned](entries []Entry) (*Table[T], error) {
	compiled := make([]compiledEntry[T], 0, len(entries))
	for i, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("%w: empty name at index %d", ErrInvalidEntry, i)
		}

		pattern, err := ParsePattern(entry.Pattern)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, entry.Name, err)
		}

		compiled = append(compiled, compiledEntry[T]{
			mask:   CompileMask[T](pattern),
			source: entry,
		})
	}

	return &Table[T]{compiled: compiled}, nil
}

// Lookup returns the first entry whose pattern matches value.
func (t *Table[T]) Lookup(value T) (Entry, bool) {
	i := t.lookup(value)
	if i < 0 {
		return Entry{}, false
	}

	return t.compiled[i].source, true
}

// Index returns the first matching entry index in input order, -1 when no match.
func (t *Table[T]) Index(value T) int {
	return t.lookup(value)
}

// Name returns the first matching entry name, empty string when no match.
func (t *Table[T]) Name(value T) string {
	i := t.lookup(value)
	if i < 0 {
		return ""
	}

	return t.compiled[i].source.Name
}

// Len returns the number of compiled entries.
func (t *Table[T]) Len() int {
	return len(t.compiled)
}

// lookup returns the first matching compiled entry index, -1 when none.
func (t *Table[T]) lookup(value T) int {
	for i := range t.compiled {
		if t.compiled[i].mask.Match(value) {
			return i
		}
	}

	return -1
}

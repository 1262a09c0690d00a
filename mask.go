// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bitrules

package bitrules

import (
	"fmt"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Mask is the compiled form of one pattern for a concrete unsigned type.
//
// Relevant has a 1 bit wherever the pattern pins the value bit ("0" or "1"
// token); Ones has a 1 bit wherever the pinned bit must be 1. Construction
// guarantees Ones&^Relevant == 0. A Mask is never mutated after CompileMask
// and is safe for unsynchronized concurrent use.
type Mask[T constraints.Unsigned] struct {
	// Relevant selects the value bits the pattern pins.
	Relevant T `json:"relevant" yaml:"relevant"`
	// Ones holds the required state of the pinned bits.
	Ones T `json:"ones" yaml:"ones"`
}

// Predicate tests one integer value against a compiled pattern.
type Predicate[T constraints.Unsigned] func(value T) bool

// CompileMask compiles a pattern into its mask pair for unsigned type T.
//
// Tokens are processed left-to-right: both masks shift left one bit, then
// the fresh bit is OR-ed in (into Relevant for "0"/"1", into Ones for "1").
// The first-written token therefore lands in the most significant surviving
// bit position and the last-written token in bit 0.
//
// Patterns longer than T's bit width lose their most significant tokens to
// ordinary fixed-width shift overflow: only the least significant
// width-of-T tokens participate in matching. Patterns shorter than T's
// width leave the high Relevant bits zero, so the high value bits are
// don't-care.
//
// CompileMask panics on tokens outside the three recognized symbols; use
// Pattern.Validate (or ParsePattern, which never produces such tokens) to
// reject untrusted input first.
func CompileMask[T constraints.Unsigned](p Pattern) Mask[T] {
	var m Mask[T]

	for _, tok := range p {
		m.Relevant <<= 1
		m.Ones <<= 1

		switch tok {
		case TokenOne:
			m.Relevant |= 1
			m.Ones |= 1
		case TokenZero:
			m.Relevant |= 1
		case TokenDontCare:
		default:
			panic(fmt.Sprintf("bitrules: invalid token %d in pattern", tok))
		}
	}

	return m
}

// Match reports whether value satisfies the compiled pattern.
//
// The test is value&Relevant == Ones. Value bits where Relevant is 0 do not
// participate, which implicitly pads short patterns with "_" on the left.
// Match has no failure states: any mask pair matches against any value.
func (m Mask[T]) Match(value T) bool {
	return value&m.Relevant == m.Ones
}

// Specified returns the number of value bits the mask pins.
func (m Mask[T]) Specified() int {
	return bits.OnesCount64(uint64(m.Relevant))
}

// Predicate returns a closure capturing the mask pair.
//
// The closure and Match always agree; the closure form exists for call
// sites that want a plain func value.
func (m Mask[T]) Predicate() Predicate[T] {
	return func(value T) bool {
		return value&m.Relevant == m.Ones
	}
}

// Compile parses pattern source and returns its matching predicate for T.
func Compile[T constraints.Unsigned](src string) (Predicate[T], error) {
	pattern, err := ParsePattern(src)
	if err != nil {
		return nil, err
	}

	return CompileMask[T](pattern).Predicate(), nil
}

// MustCompile is like Compile but panics on malformed pattern source.
//
// It simplifies safe initialization of package-level predicate variables,
// where a malformed pattern should stop the program at initialization.
func MustCompile[T constraints.Unsigned](src string) Predicate[T] {
	pred, err := Compile[T](src)
	if err != nil {
		panic(`bitrules: MustCompile(` + strconv.Quote(src) + `): ` + err.Error())
	}

	return pred
}

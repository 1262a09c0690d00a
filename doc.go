// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bitrules

/*
Package bitrules implements bit-pattern matching with reusable include/exclude policies.

A pattern is a sequence of `1`, `0` and `_` symbols written most significant bit first:
`1` pins a value bit to one, `0` pins it to zero, `_` accepts either. Patterns compile
into a (relevant, ones) mask pair, and matching a value is one AND plus one comparison.
The package targets instruction decoding, protocol header dispatch, register layouts,
and other places where `1 1 1 _ _ 0 0 0` reads better than hand-written mask logic.

Basic flow:
  - parse a pattern from text (`ParsePattern` / `MustParsePattern`)
  - compile it for an unsigned type (`CompileMask`)
  - test values (`Mask.Match`), or take a plain closure (`Mask.Predicate`)
  - or do all of it in one call (`Compile` / `MustCompile`)

Pattern width is independent of the matched type width: a shorter pattern leaves the
high value bits unconstrained, a longer pattern drops its excess most significant
symbols. Compiled masks, matchers and tables are immutable after construction and
safe for concurrent use.

For ordered rule policies, use `Matcher`:
  - parse rules from text (`ParseRules`)
  - optionally load rules from file (`LoadRulesFile`)
  - compile matcher (`NewMatcher`)
  - ask for decision (`Decide` / `Included` / `Excluded`); the last matching rule wins

For decode tables, use `Table`:
  - declare named encodings (`Entry`), or derive patterns from value/mask
    pairs (`ExactPattern` / `MaskedPattern`)
  - compile table (`NewTable`)
  - resolve values (`Lookup` / `Name` / `Index`); the first matching entry wins
*/
package bitrules

// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locdef defines the object model for glibc locale definition
// files and a parser producing it.
//
// A definition file describes one locale as a sequence of categories
// (LC_TIME, LC_NUMERIC, ...), each holding keyword entries whose
// operands are quoted strings, bare words, or signed integers. The
// model preserves the file's entry order and keyword repetition:
// repeated keywords are how the format encodes tables, and the
// compiler depends on seeing them in source order.
package locdef

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Kind discriminates the operand forms an entry value can take.
type Kind int

const (
	// KindRawText is an unquoted operand, kept verbatim.
	KindRawText Kind = iota
	// KindText is a double-quoted operand with symbolic characters and
	// escapes decoded.
	KindText
	// KindInteger is a bare signed decimal operand.
	KindInteger
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindRawText:
		return "raw text"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// A Value is a single operand of a definition entry.
type Value struct {
	kind Kind
	str  string
	num  int64
}

// Text returns a Value holding decoded quoted text.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// RawText returns a Value holding an unquoted token.
func RawText(s string) Value { return Value{kind: KindRawText, str: s} }

// Integer returns a Value holding a signed integer.
func Integer(n int64) Value { return Value{kind: KindInteger, num: n} }

// Kind reports the value's form.
func (v Value) Kind() Kind { return v.kind }

// Text returns the textual content of a Text or RawText value, and ""
// for an Integer.
func (v Value) Text() string { return v.str }

// Int returns the numeric content of an Integer value, and 0 for the
// textual kinds.
func (v Value) Int() int64 { return v.num }

// String renders the value roughly as it would appear in a definition
// file.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return strconv.Quote(v.str)
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	}
	return v.str
}

// An Entry is one keyword line of a category: a key and its operands.
// An entry may carry no operands at all.
type Entry struct {
	Key    string
	Values []Value
}

// An Object is one category of a locale. Entries appear in source
// order and keys may repeat: seven "day" entries are a seven-row
// table.
type Object struct {
	Name    string
	Entries []Entry
}

// A Table maps locale names to their categories. A locale name may
// carry an @modifier, as in ca_ES@valencia. Within one locale,
// category names are unique.
type Table map[string][]Object

// Names returns the table's locale names, sorted.
func (t Table) Names() []string {
	names := maps.Keys(t)
	slices.Sort(names)
	return names
}

// Lookup returns the named category of the named locale.
func (t Table) Lookup(locale, category string) (Object, bool) {
	for _, obj := range t[locale] {
		if obj.Name == category {
			return obj, true
		}
	}
	return Object{}, false
}

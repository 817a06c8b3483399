// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import "fmt"

// A MixedTypesError reports a key whose entries mix operand kinds, so
// no single element type can be inferred for the generated constant.
type MixedTypesError struct {
	Locale   string
	Category string
	Key      string // key as written in the definition
}

func (e *MixedTypesError) Error() string {
	return fmt.Sprintf("%s: %s: key %q mixes value types", e.Locale, e.Category, e.Key)
}

// An InvalidCopyTargetError reports a copy or include entry whose
// operand is not a single quoted locale name.
type InvalidCopyTargetError struct {
	Locale   string
	Category string
	Key      string // "copy" or "include"
}

func (e *InvalidCopyTargetError) Error() string {
	return fmt.Sprintf("%s: %s: %s wants a single quoted locale name", e.Locale, e.Category, e.Key)
}

// An UnknownLocaleError reports a copy entry naming a locale absent
// from the table.
type UnknownLocaleError struct {
	Locale   string
	Category string
	Target   string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("%s: %s: copy of unknown locale %q", e.Locale, e.Category, e.Target)
}

// A MissingCopySourceError reports a copy target locale that has no
// category of the required name.
type MissingCopySourceError struct {
	Locale   string
	Category string
	Target   string
}

func (e *MissingCopySourceError) Error() string {
	return fmt.Sprintf("%s: %s: locale %q has no %s category", e.Locale, e.Category, e.Target, e.Category)
}

// A CyclicCopyError reports a chain of copy entries that returns to a
// locale/category pair it already passed through.
type CyclicCopyError struct {
	Locale   string
	Category string
}

func (e *CyclicCopyError) Error() string {
	return fmt.Sprintf("%s: %s: cyclic copy chain", e.Locale, e.Category)
}

// A DuplicateKeyError reports two keys of one category mapping to the
// same generated identifier, or one key generated twice through a
// copy.
type DuplicateKeyError struct {
	Locale   string
	Category string
	Ident    string   // the colliding identifier
	Keys     []string // keys as written; a single key when a copy re-emits it
}

func (e *DuplicateKeyError) Error() string {
	if len(e.Keys) == 2 {
		return fmt.Sprintf("%s: %s: keys %q and %q both map to identifier %s",
			e.Locale, e.Category, e.Keys[0], e.Keys[1], e.Ident)
	}
	return fmt.Sprintf("%s: %s: identifier %s generated more than once", e.Locale, e.Category, e.Ident)
}

// A DuplicateLocaleError reports two locale names mapping to the same
// generated identifier.
type DuplicateLocaleError struct {
	Names [2]string
	Ident string
}

func (e *DuplicateLocaleError) Error() string {
	return fmt.Sprintf("locales %q and %q both map to identifier %s", e.Names[0], e.Names[1], e.Ident)
}

// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import "github.com/pitdicker/golocales/locdef"

// A copyKey identifies a locale/category pair on the active copy
// chain.
type copyKey struct {
	locale   string
	category string
}

// isCopy reports whether a key redirects its group to another locale.
func isCopy(key string) bool {
	return key == "copy" || key == "include"
}

// copyTarget validates a copy group and returns the referenced locale
// name. Only the group's first entry counts, and it must hold exactly
// one quoted string.
func copyTarget(locale, category string, g group) (string, error) {
	row := g.rows[0]
	if len(row) != 1 || row[0].Kind() != locdef.KindText {
		return "", &InvalidCopyTargetError{Locale: locale, Category: category, Key: g.key}
	}
	return row[0].Text(), nil
}

// findSource resolves a copy target to the same-named category of the
// referenced locale.
func findSource(t locdef.Table, locale, category, target string) (locdef.Object, error) {
	if _, ok := t[target]; !ok {
		return locdef.Object{}, &UnknownLocaleError{Locale: locale, Category: category, Target: target}
	}
	obj, ok := t.Lookup(target, category)
	if !ok {
		return locdef.Object{}, &MissingCopySourceError{Locale: locale, Category: category, Target: target}
	}
	return obj, nil
}

// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import "strings"

// sanitizeKey maps an entry key to the identifier used for it in
// generated code. The replacements run in order: the quote characters
// are dropped before any other rule sees the text, and the result is
// upper-cased last, which is why the spelled-out replacements come
// back upper-cased too.
func sanitizeKey(key string) string {
	s := strings.ReplaceAll(key, "'", "")
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "=", "eq")
	s = strings.ReplaceAll(s, "<", "lt")
	s = strings.ReplaceAll(s, "..", "dotdot")
	s = strings.ReplaceAll(s, "2", "two")
	return strings.ToUpper(s)
}

// localeIdent returns the identifier naming a locale in generated
// code: the locale name with the @modifier separator replaced and the
// result upper-cased, so ca_ES@valencia becomes CA_ES_VALENCIA.
func localeIdent(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "@", "_"))
}

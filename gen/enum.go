// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/pitdicker/golocales/locdef"
)

// posixDescription documents the POSIX locale when its definition
// carries no title entry.
const posixDescription = "POSIX Standard Locale."

// description derives a locale's one-line description from the title
// entry of its LC_IDENTIFICATION category.
func (g *generator) description(locale string) string {
	if obj, ok := g.table.Lookup(locale, "LC_IDENTIFICATION"); ok {
		for _, e := range obj.Entries {
			if e.Key != "title" {
				continue
			}
			if len(e.Values) > 0 && e.Values[0].Kind() == locdef.KindText {
				title := e.Values[0].Text()
				if !strings.HasSuffix(title, ".") {
					title += "."
				}
				return title
			}
			break
		}
	}
	if locale == "POSIX" {
		return posixDescription
	}
	return ""
}

// genEnum emits the Locale enumeration, its name tables, and accessor
// methods for the members every locale shares.
func (g *generator) genEnum(w *codeWriter, locales []string, members map[string][]member) {
	// POSIX leads so that it is the type's zero value; the rest stay
	// in name order.
	order := slices.Clone(locales)
	if i := slices.Index(order, "POSIX"); i > 0 {
		order = slices.Delete(order, i, i+1)
		order = slices.Insert(order, 0, "POSIX")
	}
	hasPOSIX := len(order) > 0 && order[0] == "POSIX"

	w.blank()
	doc := "A Locale identifies one locale of the compiled set."
	if hasPOSIX {
		doc += "\nThe zero value is the POSIX locale."
	}
	w.doc(doc)
	w.line("type Locale int")
	w.blank()
	w.line("const (")
	w.in()
	for i, name := range order {
		ident := localeIdent(name)
		if d := g.description(name); d != "" {
			w.doc(ident + ": " + d)
		}
		if i == 0 {
			w.line("%s Locale = iota", ident)
		} else {
			w.line("%s", ident)
		}
	}
	w.out()
	w.line(")")

	w.blank()
	w.doc("NumLocales is the number of locales in the compiled set.")
	w.line("const NumLocales = %d", len(order))

	w.blank()
	w.line("var localeNames = [NumLocales]string{")
	w.in()
	for _, name := range order {
		w.line("%s: %s,", localeIdent(name), strconv.Quote(name))
	}
	w.out()
	w.line("}")

	w.blank()
	w.doc("String returns the locale's name as written in its source\ndefinition.")
	w.line("func (l Locale) String() string {")
	w.in()
	w.line("if l < 0 || int(l) >= len(localeNames) {")
	w.in()
	w.line(`return "unknown"`)
	w.out()
	w.line("}")
	w.line("return localeNames[l]")
	w.out()
	w.line("}")

	w.blank()
	w.line("var localeByName = map[string]Locale{")
	w.in()
	for _, name := range order {
		w.line("%s: %s,", strconv.Quote(name), localeIdent(name))
	}
	w.out()
	w.line("}")

	w.blank()
	w.doc("ParseLocale returns the locale named by name.")
	w.line("func ParseLocale(name string) (Locale, error) {")
	w.in()
	w.line("if l, ok := localeByName[name]; ok {")
	w.in()
	w.line("return l, nil")
	w.out()
	w.line("}")
	w.line("return 0, UnknownLocaleError(name)")
	w.out()
	w.line("}")

	w.blank()
	w.doc("An UnknownLocaleError reports a locale name outside the\ncompiled set.")
	w.line("type UnknownLocaleError string")
	w.blank()
	w.line("func (e UnknownLocaleError) Error() string {")
	w.in()
	w.line(`return "unknown locale \"" + string(e) + "\""`)
	w.out()
	w.line("}")

	for _, m := range universalMembers(order, members) {
		w.blank()
		w.line("var _%s = [NumLocales]%s{", m.name(), m.goType())
		w.in()
		for _, name := range order {
			id := localeIdent(name)
			w.line("%s: %s_%s,", id, id, m.name())
		}
		w.out()
		w.line("}")
		w.blank()
		w.doc(m.name() + " returns the locale's " + m.category + " " + m.key + " value.")
		w.line("func (l Locale) %s() %s { return _%s[l] }", m.name(), m.goType(), m.name())
	}
}

// universalMembers returns the members present in every locale with
// one shape and element type, sorted by name. Only those can have
// accessor methods: dispatch needs the constant to exist for every
// Locale value.
func universalMembers(locales []string, members map[string][]member) []member {
	if len(locales) == 0 {
		return nil
	}
	var (
		counts = make(map[string]int)
		types  = make(map[string]string)
		reps   = make(map[string]member)
		bad    = make(map[string]bool)
	)
	for _, locale := range locales {
		for _, m := range members[locale] {
			name := m.name()
			if _, ok := types[name]; !ok {
				types[name] = m.goType()
				reps[name] = m
			} else if types[name] != m.goType() {
				bad[name] = true
			}
			counts[name]++
		}
	}
	var out []member
	for name, n := range counts {
		if n == len(locales) && !bad[name] {
			out = append(out, reps[name])
		}
	}
	slices.SortFunc(out, func(a, b member) bool { return a.name() < b.name() })
	return out
}

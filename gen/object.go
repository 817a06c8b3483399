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

// A member is one constant of a locale's generated namespace.
type member struct {
	category string
	key      string // as written in the definition
	ident    string // sanitized key
	form     shape
	elem     locdef.Kind
}

// name returns the member's identifier without the locale prefix.
func (m member) name() string { return m.category + "_" + m.ident }

// goType returns the Go type of the member's data.
func (m member) goType() string {
	elem := "string"
	if m.elem == locdef.KindInteger {
		elem = "int64"
	}
	switch m.form {
	case shapeVector:
		return "[]" + elem
	case shapeMatrix:
		return "[][]" + elem
	}
	return elem
}

// genLocale emits every category of one locale and returns the
// locale's namespace members.
func (g *generator) genLocale(w *codeWriter, locale string) ([]member, error) {
	objects := slices.Clone(g.table[locale])
	slices.SortFunc(objects, func(a, b locdef.Object) bool { return a.Name < b.Name })

	w.blank()
	w.line("// Locale %s.", locale)

	var members []member
	seen := make(map[string]string)
	for _, obj := range objects {
		if g.excluded[obj.Name] {
			continue
		}
		var (
			ms  []member
			err error
		)
		if len(obj.Entries) == 1 && obj.Entries[0].Key == "copy" {
			ms, err = g.genAlias(w, locale, obj)
		} else {
			ms, err = g.genObject(w, locale, locale, obj, seen, make(map[copyKey]bool))
		}
		if err != nil {
			return nil, err
		}
		members = append(members, ms...)
	}
	return members, nil
}

// genObject emits the constants of one category into w, prefixing
// their names for the owner locale. src is the locale whose data is
// being read; it differs from owner below an inlined copy. Emitted
// identifiers accumulate in seen to reject collisions a copy can
// introduce, and path holds the active copy chain for cycle
// detection.
func (g *generator) genObject(w *codeWriter, owner, src string, obj locdef.Object, seen map[string]string, path map[copyKey]bool) ([]member, error) {
	k := copyKey{src, obj.Name}
	if path[k] {
		return nil, &CyclicCopyError{Locale: src, Category: obj.Name}
	}
	path[k] = true
	defer delete(path, k)

	groups, err := groupEntries(src, obj)
	if err != nil {
		return nil, err
	}
	prefix := localeIdent(owner)
	var members []member
	for _, grp := range groups {
		if isCopy(grp.key) {
			target, err := copyTarget(src, obj.Name, grp)
			if err != nil {
				return nil, err
			}
			srcObj, err := findSource(g.table, src, obj.Name, target)
			if err != nil {
				return nil, err
			}
			ms, err := g.genObject(w, owner, target, srcObj, seen, path)
			if err != nil {
				return nil, err
			}
			members = append(members, ms...)
			continue
		}
		form, elem, err := classify(src, obj.Name, grp)
		if err != nil {
			return nil, err
		}
		if form == shapeEmpty {
			// A keyword without operands ends the category's content;
			// whatever was emitted so far stands.
			return members, nil
		}
		m := member{category: obj.Name, key: grp.key, ident: grp.ident, form: form, elem: elem}
		if prev, ok := seen[m.name()]; ok {
			keys := []string{prev, grp.key}
			if prev == grp.key {
				keys = keys[:1]
			}
			return nil, &DuplicateKeyError{Locale: owner, Category: obj.Name, Ident: m.name(), Keys: keys}
		}
		seen[m.name()] = grp.key
		emitMember(w, prefix, m, grp)
		members = append(members, m)
	}
	return members, nil
}

// genAlias emits a category that is a bare copy entry as one alias
// declaration per member of the resolved source namespace. Constants
// alias constants and slice variables share their backing arrays, so
// the result is referentially equal to inlining the source.
func (g *generator) genAlias(w *codeWriter, owner string, obj locdef.Object) ([]member, error) {
	grp := group{key: obj.Entries[0].Key, rows: [][]locdef.Value{obj.Entries[0].Values}}
	target, err := copyTarget(owner, obj.Name, grp)
	if err != nil {
		return nil, err
	}
	src, err := findSource(g.table, owner, obj.Name, target)
	if err != nil {
		return nil, err
	}
	members, err := g.members(target, src)
	if err != nil {
		return nil, err
	}

	w.blank()
	w.line("// %s %s is a copy of %s.", owner, obj.Name, target)
	w.blank()
	prefix, from := localeIdent(owner), localeIdent(target)
	for _, m := range members {
		kw := "var"
		if m.form == shapeScalar {
			kw = "const"
		}
		w.line("%s %s_%s = %s_%s", kw, prefix, m.name(), from, m.name())
	}
	return members, nil
}

// members computes the namespace members of a category without
// emitting it, by generating into a scratch writer.
func (g *generator) members(locale string, obj locdef.Object) ([]member, error) {
	var scratch codeWriter
	return g.genObject(&scratch, locale, locale, obj, make(map[string]string), make(map[copyKey]bool))
}

// emitMember writes one constant declaration with its literal data.
func emitMember(w *codeWriter, prefix string, m member, grp group) {
	name := prefix + "_" + m.name()
	w.blank()
	switch m.form {
	case shapeScalar:
		v := grp.rows[0][0]
		lit := valueLit(v)
		w.doc(name + ": " + lit)
		if v.Kind() == locdef.KindInteger {
			w.line("const %s int64 = %s", name, lit)
		} else {
			w.line("const %s = %s", name, lit)
		}
	case shapeVector:
		w.line("var %s = %s%s", name, m.goType(), rowLit(grp.rows[0]))
	case shapeMatrix:
		w.doc(name + ": " + matrixLit(grp.rows))
		w.line("var %s = %s{", name, m.goType())
		w.in()
		for _, row := range grp.rows {
			w.line("%s,", rowLit(row))
		}
		w.out()
		w.line("}")
	}
}

// valueLit renders a value as a Go literal. Both textual kinds render
// as quoted strings.
func valueLit(v locdef.Value) string {
	if v.Kind() == locdef.KindInteger {
		return strconv.FormatInt(v.Int(), 10)
	}
	return strconv.Quote(v.Text())
}

// rowLit renders one row of values as a braced literal list.
func rowLit(row []locdef.Value) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = valueLit(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// matrixLit renders a whole matrix on one line for a doc comment.
func matrixLit(rows [][]locdef.Value) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = rowLit(row)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

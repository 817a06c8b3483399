// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen compiles parsed glibc locale definitions into Go
// source.
//
// Generate produces a single self-contained file: one constant or
// variable per category key of every locale, named
// <LOCALE>_<CATEGORY>_<KEY>, a closed Locale enumeration over the
// compiled set with name lookup, and accessor methods dispatching on
// a Locale value for the keys all locales share. The file imports
// nothing, so it can be dropped into any module, and a whole run
// either succeeds or produces no output at all.
//
// The constant form per key is inferred from the entries sharing it:
// one entry with one operand is a scalar, one entry with several
// operands a slice, and repeated entries a slice of slices with one
// inner slice per entry in source order. Entries mixing text and
// integer operands cannot be compiled. A category consisting of a
// bare copy entry becomes aliases for the referenced locale's
// constants; a copy among other keys inlines the referenced content
// under the referring locale's names.
package gen

import (
	"fmt"
	"go/format"

	"github.com/pitdicker/golocales/locdef"
)

// DefaultExcluded lists the categories the compiler never emits.
// Their value shapes (collation rules, character classes, ...) do not
// fit the constant forms the inference produces.
var DefaultExcluded = []string{
	"LC_COLLATE",
	"LC_CTYPE",
	"LC_MEASUREMENT",
	"LC_NAME",
	"LC_PAPER",
}

// Options configures Generate.
type Options struct {
	// Package is the package name of the generated file. The default
	// is "locales".
	Package string

	// Exclude lists category names to skip in addition to
	// DefaultExcluded.
	Exclude []string
}

// A generator holds the state of one Generate run.
type generator struct {
	table    locdef.Table
	excluded map[string]bool
}

// Generate compiles a locale table into one Go source file. opts may
// be nil for the defaults. Generation is all-or-nothing: any error
// means no output.
func Generate(table locdef.Table, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = &Options{}
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = "locales"
	}
	g := &generator{table: table, excluded: make(map[string]bool)}
	for _, name := range DefaultExcluded {
		g.excluded[name] = true
	}
	for _, name := range opts.Exclude {
		g.excluded[name] = true
	}

	locales := table.Names()
	idents := make(map[string]string, len(locales))
	for _, name := range locales {
		ident := localeIdent(name)
		if prev, ok := idents[ident]; ok {
			return nil, &DuplicateLocaleError{Names: [2]string{prev, name}, Ident: ident}
		}
		idents[ident] = name
	}

	var w codeWriter
	w.line("// Code generated by genlocales. DO NOT EDIT.")
	w.blank()
	w.doc(fmt.Sprintf("Package %s holds locale data compiled from %d glibc locale definitions.", pkg, len(locales)))
	w.line("package %s", pkg)

	members := make(map[string][]member, len(locales))
	for _, name := range locales {
		lm, err := g.genLocale(&w, name)
		if err != nil {
			return nil, err
		}
		members[name] = lm
	}
	g.genEnum(&w, locales, members)

	src, err := format.Source(w.bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %v", err)
	}
	return src, nil
}

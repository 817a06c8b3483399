// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"github.com/pitdicker/golocales/locdef"
)

func TestGenerate(t *testing.T) {
	table := locdef.Table{
		"POSIX": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "day", Values: []locdef.Value{locdef.Text("Sunday")}},
				{Key: "day", Values: []locdef.Value{locdef.Text("Monday")}},
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%m/%d/%y")}},
				{Key: "am_pm", Values: []locdef.Value{locdef.Text("AM"), locdef.Text("PM")}},
			}},
			{Name: "LC_NUMERIC", Entries: []locdef.Entry{
				{Key: "decimal_point", Values: []locdef.Value{locdef.Text(".")}},
				{Key: "grouping", Values: []locdef.Value{locdef.Integer(-1)}},
			}},
		},
		"aa_DJ": {
			{Name: "LC_IDENTIFICATION", Entries: []locdef.Entry{
				{Key: "title", Values: []locdef.Value{locdef.Text("Afar language locale for Djibouti")}},
			}},
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "day", Values: []locdef.Value{locdef.Text("Acaada")}},
				{Key: "day", Values: []locdef.Value{locdef.Text("Etleeni")}},
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%d/%m/%Y")}},
				{Key: "am_pm", Values: []locdef.Value{locdef.Text("saaku"), locdef.Text("carra")}},
			}},
			{Name: "LC_CTYPE", Entries: []locdef.Entry{
				{Key: "class", Values: []locdef.Value{locdef.RawText("upper")}},
			}},
		},
	}
	src, err := Generate(table, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := `// Code generated by genlocales. DO NOT EDIT.

// Package locales holds locale data compiled from 2 glibc locale definitions.
package locales

// Locale POSIX.

// POSIX_LC_NUMERIC_DECIMAL_POINT: "."
const POSIX_LC_NUMERIC_DECIMAL_POINT = "."

// POSIX_LC_NUMERIC_GROUPING: -1
const POSIX_LC_NUMERIC_GROUPING int64 = -1

var POSIX_LC_TIME_AM_PM = []string{"AM", "PM"}

// POSIX_LC_TIME_DAY: {{"Sunday"}, {"Monday"}}
var POSIX_LC_TIME_DAY = [][]string{
	{"Sunday"},
	{"Monday"},
}

// POSIX_LC_TIME_D_FMT: "%m/%d/%y"
const POSIX_LC_TIME_D_FMT = "%m/%d/%y"

// Locale aa_DJ.

// AA_DJ_LC_IDENTIFICATION_TITLE: "Afar language locale for Djibouti"
const AA_DJ_LC_IDENTIFICATION_TITLE = "Afar language locale for Djibouti"

var AA_DJ_LC_TIME_AM_PM = []string{"saaku", "carra"}

// AA_DJ_LC_TIME_DAY: {{"Acaada"}, {"Etleeni"}}
var AA_DJ_LC_TIME_DAY = [][]string{
	{"Acaada"},
	{"Etleeni"},
}

// AA_DJ_LC_TIME_D_FMT: "%d/%m/%Y"
const AA_DJ_LC_TIME_D_FMT = "%d/%m/%Y"

// A Locale identifies one locale of the compiled set.
// The zero value is the POSIX locale.
type Locale int

const (
	// POSIX: POSIX Standard Locale.
	POSIX Locale = iota
	// AA_DJ: Afar language locale for Djibouti.
	AA_DJ
)

// NumLocales is the number of locales in the compiled set.
const NumLocales = 2

var localeNames = [NumLocales]string{
	POSIX: "POSIX",
	AA_DJ: "aa_DJ",
}

// String returns the locale's name as written in its source
// definition.
func (l Locale) String() string {
	if l < 0 || int(l) >= len(localeNames) {
		return "unknown"
	}
	return localeNames[l]
}

var localeByName = map[string]Locale{
	"POSIX": POSIX,
	"aa_DJ": AA_DJ,
}

// ParseLocale returns the locale named by name.
func ParseLocale(name string) (Locale, error) {
	if l, ok := localeByName[name]; ok {
		return l, nil
	}
	return 0, UnknownLocaleError(name)
}

// An UnknownLocaleError reports a locale name outside the
// compiled set.
type UnknownLocaleError string

func (e UnknownLocaleError) Error() string {
	return "unknown locale \"" + string(e) + "\""
}

var _LC_TIME_AM_PM = [NumLocales][]string{
	POSIX: POSIX_LC_TIME_AM_PM,
	AA_DJ: AA_DJ_LC_TIME_AM_PM,
}

// LC_TIME_AM_PM returns the locale's LC_TIME am_pm value.
func (l Locale) LC_TIME_AM_PM() []string { return _LC_TIME_AM_PM[l] }

var _LC_TIME_DAY = [NumLocales][][]string{
	POSIX: POSIX_LC_TIME_DAY,
	AA_DJ: AA_DJ_LC_TIME_DAY,
}

// LC_TIME_DAY returns the locale's LC_TIME day value.
func (l Locale) LC_TIME_DAY() [][]string { return _LC_TIME_DAY[l] }

var _LC_TIME_D_FMT = [NumLocales]string{
	POSIX: POSIX_LC_TIME_D_FMT,
	AA_DJ: AA_DJ_LC_TIME_D_FMT,
}

// LC_TIME_D_FMT returns the locale's LC_TIME d_fmt value.
func (l Locale) LC_TIME_D_FMT() string { return _LC_TIME_D_FMT[l] }
`
	if diff := cmp.Diff(want, string(src)); diff != "" {
		t.Errorf("Generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateParses(t *testing.T) {
	table := locdef.Table{
		"POSIX": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%m/%d/%y")}},
			}},
		},
		"aa_DJ": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%d/%m/%Y")}},
			}},
		},
		"ca_ES@valencia": {
			{Name: "LC_IDENTIFICATION", Entries: []locdef.Entry{
				{Key: "title", Values: []locdef.Value{locdef.Text("Valencian language locale for Spain.")}},
			}},
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%d/%m/%Y")}},
			}},
		},
	}
	src, err := Generate(table, &Options{Package: "valencia"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "tables.go", src, parser.ParseComments); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	for _, want := range []string{
		"package valencia",
		"const CA_ES_VALENCIA_LC_TIME_D_FMT = \"%d/%m/%Y\"",
		"// CA_ES_VALENCIA: Valencian language locale for Spain.",
		"func (l Locale) LC_TIME_D_FMT() string { return _LC_TIME_D_FMT[l] }",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source does not contain %q", want)
		}
	}
}

func TestGeneratePOSIXLeads(t *testing.T) {
	// "C" sorts before "POSIX", but POSIX must still be the
	// enumeration's zero value.
	table := locdef.Table{
		"C": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%m/%d/%y")}},
			}},
		},
		"POSIX": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%m/%d/%y")}},
			}},
		},
	}
	src, err := Generate(table, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(string(src), "POSIX Locale = iota\n\tC\n)") {
		t.Errorf("POSIX is not the first enumerator:\n%s", src)
	}
	// Locale content itself stays in name order.
	c := strings.Index(string(src), "// Locale C.")
	p := strings.Index(string(src), "// Locale POSIX.")
	if c < 0 || p < 0 || c > p {
		t.Errorf("locale sections out of name order: C at %d, POSIX at %d", c, p)
	}
}

func TestGenerateEmptyKeyword(t *testing.T) {
	// A keyword without operands ends its category. Keys already
	// emitted stay; later keys of the same category are dropped, and
	// other categories are unaffected.
	table := locdef.Table{
		"aa_DJ": {
			{Name: "LC_MESSAGES", Entries: []locdef.Entry{
				{Key: "noexpr", Values: nil},
				{Key: "yesexpr", Values: []locdef.Value{locdef.Text("^[yY]")}},
			}},
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%d/%m/%Y")}},
			}},
		},
	}
	src, err := Generate(table, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(string(src), "AA_DJ_LC_MESSAGES_YESEXPR") {
		t.Errorf("key after an empty keyword was emitted:\n%s", src)
	}
	if !strings.Contains(string(src), "AA_DJ_LC_TIME_D_FMT") {
		t.Errorf("category after an aborted one is missing:\n%s", src)
	}
}

func TestGenerateExcluded(t *testing.T) {
	table := locdef.Table{
		"aa_DJ": {
			{Name: "LC_COLLATE", Entries: []locdef.Entry{
				{Key: "script", Values: []locdef.Value{locdef.RawText("latin")}},
			}},
			{Name: "LC_MESSAGES", Entries: []locdef.Entry{
				{Key: "yesexpr", Values: []locdef.Value{locdef.Text("^[yY]")}},
			}},
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%d/%m/%Y")}},
			}},
		},
	}
	src, err := Generate(table, &Options{Exclude: []string{"LC_TIME"}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, absent := range []string{"LC_COLLATE", "LC_TIME"} {
		if strings.Contains(string(src), absent) {
			t.Errorf("excluded category %s was emitted", absent)
		}
	}
	if !strings.Contains(string(src), "AA_DJ_LC_MESSAGES_YESEXPR") {
		t.Errorf("non-excluded category is missing:\n%s", src)
	}
}

func TestGenerateInlineCopy(t *testing.T) {
	// A copy among other keys re-emits the referenced content under
	// the referring locale's names instead of aliasing it.
	table := locdef.Table{
		"aa_DJ": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "day", Values: []locdef.Value{locdef.Text("Acaada")}},
				{Key: "day", Values: []locdef.Value{locdef.Text("Etleeni")}},
			}},
		},
		"aa_ER": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%d.%m.%Y")}},
				{Key: "copy", Values: []locdef.Value{locdef.Text("aa_DJ")}},
			}},
		},
	}
	src, err := Generate(table, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"var AA_ER_LC_TIME_DAY = [][]string{",
		"const AA_ER_LC_TIME_D_FMT = \"%d.%m.%Y\"",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source does not contain %q:\n%s", want, src)
		}
	}
	if strings.Contains(string(src), "is a copy of") {
		t.Errorf("inline copy was emitted as an alias:\n%s", src)
	}
}

func TestGenerateAlias(t *testing.T) {
	table := locdef.Table{
		"aa_DJ": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "day", Values: []locdef.Value{locdef.Text("Acaada")}},
				{Key: "day", Values: []locdef.Value{locdef.Text("Etleeni")}},
				{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%d/%m/%Y")}},
			}},
		},
		"aa_ER": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "copy", Values: []locdef.Value{locdef.Text("aa_DJ")}},
			}},
		},
	}
	src, err := Generate(table, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"// aa_ER LC_TIME is a copy of aa_DJ.",
		"var AA_ER_LC_TIME_DAY = AA_DJ_LC_TIME_DAY",
		"const AA_ER_LC_TIME_D_FMT = AA_DJ_LC_TIME_D_FMT",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source does not contain %q:\n%s", want, src)
		}
	}

	// The alias namespace must mirror the source namespace exactly.
	var dj, er []string
	for _, name := range declNames(t, src) {
		if s := strings.TrimPrefix(name, "AA_DJ_"); s != name {
			dj = append(dj, s)
		}
		if s := strings.TrimPrefix(name, "AA_ER_"); s != name {
			er = append(er, s)
		}
	}
	slices.Sort(dj)
	slices.Sort(er)
	if diff := cmp.Diff(dj, er); diff != "" {
		t.Errorf("alias namespace differs from source (-aa_DJ +aa_ER):\n%s", diff)
	}
}

// declNames parses generated source and returns the names of its
// top-level constants and variables.
func declNames(t *testing.T, src []byte) []string {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "tables.go", src, 0)
	if err != nil {
		t.Fatalf("parsing generated source: %v", err)
	}
	var names []string
	for _, d := range f.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, id := range vs.Names {
				names = append(names, id.Name)
			}
		}
	}
	return names
}

func TestGenerateMixedTypes(t *testing.T) {
	table := locdef.Table{
		"ja_JP": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "era", Values: []locdef.Value{locdef.Text("heisei"), locdef.Integer(1989)}},
			}},
		},
	}
	_, err := Generate(table, nil)
	var mixed *MixedTypesError
	if !errors.As(err, &mixed) {
		t.Fatalf("Generate returned %v, want MixedTypesError", err)
	}
	if mixed.Key != "era" {
		t.Errorf("Key = %q, want era", mixed.Key)
	}
}

func TestGenerateCopyErrors(t *testing.T) {
	base := locdef.Object{Name: "LC_TIME", Entries: []locdef.Entry{
		{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%d/%m/%Y")}},
	}}
	for _, test := range []struct {
		name   string
		table  locdef.Table
		target any
	}{
		{
			name: "unknown locale",
			table: locdef.Table{
				"aa_ER": {{Name: "LC_TIME", Entries: []locdef.Entry{
					{Key: "day", Values: []locdef.Value{locdef.Text("X")}},
					{Key: "copy", Values: []locdef.Value{locdef.Text("zz_ZZ")}},
				}}},
			},
			target: new(*UnknownLocaleError),
		},
		{
			name: "missing category",
			table: locdef.Table{
				"aa_DJ": {{Name: "LC_NUMERIC", Entries: []locdef.Entry{
					{Key: "grouping", Values: []locdef.Value{locdef.Integer(3)}},
				}}},
				"aa_ER": {{Name: "LC_TIME", Entries: []locdef.Entry{
					{Key: "copy", Values: []locdef.Value{locdef.Text("aa_DJ")}},
				}}},
			},
			target: new(*MissingCopySourceError),
		},
		{
			name: "unquoted target",
			table: locdef.Table{
				"aa_DJ": {base},
				"aa_ER": {{Name: "LC_TIME", Entries: []locdef.Entry{
					{Key: "copy", Values: []locdef.Value{locdef.RawText("aa_DJ")}},
				}}},
			},
			target: new(*InvalidCopyTargetError),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Generate(test.table, nil)
			if err == nil {
				t.Fatal("Generate succeeded, want error")
			}
			if !errors.As(err, test.target) {
				t.Errorf("Generate returned %v, want %T", err, test.target)
			}
		})
	}
}

func TestGenerateDuplicateKeyAcrossCopy(t *testing.T) {
	table := locdef.Table{
		"aa_DJ": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "day", Values: []locdef.Value{locdef.Text("Acaada")}},
			}},
		},
		"aa_ER": {
			{Name: "LC_TIME", Entries: []locdef.Entry{
				{Key: "day", Values: []locdef.Value{locdef.Text("Etleeni")}},
				{Key: "copy", Values: []locdef.Value{locdef.Text("aa_DJ")}},
			}},
		},
	}
	_, err := Generate(table, nil)
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("Generate returned %v, want DuplicateKeyError", err)
	}
	if dup.Locale != "aa_ER" || dup.Ident != "LC_TIME_DAY" {
		t.Errorf("error fields = %q %q", dup.Locale, dup.Ident)
	}
	if !strings.Contains(err.Error(), "generated more than once") {
		t.Errorf("Error() = %q", err)
	}
}

func TestGenerateDuplicateLocale(t *testing.T) {
	obj := locdef.Object{Name: "LC_TIME", Entries: []locdef.Entry{
		{Key: "d_fmt", Values: []locdef.Value{locdef.Text("%d/%m/%Y")}},
	}}
	table := locdef.Table{
		"aa_DJ@x": {obj},
		"aa_DJ_x": {obj},
	}
	_, err := Generate(table, nil)
	var dup *DuplicateLocaleError
	if !errors.As(err, &dup) {
		t.Fatalf("Generate returned %v, want DuplicateLocaleError", err)
	}
	if dup.Ident != "AA_DJ_X" {
		t.Errorf("Ident = %q, want AA_DJ_X", dup.Ident)
	}
	if dup.Names != [2]string{"aa_DJ@x", "aa_DJ_x"} {
		t.Errorf("Names = %q", dup.Names)
	}
}

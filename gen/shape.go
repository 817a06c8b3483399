// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"golang.org/x/exp/slices"

	"github.com/pitdicker/golocales/locdef"
)

// A shape is the inferred form of one key-group.
type shape int

const (
	shapeScalar shape = iota
	shapeVector
	shapeMatrix
	// shapeEmpty is a single entry without operands. It emits nothing
	// and stops the surrounding category.
	shapeEmpty
)

// A group collects every entry of one category sharing a key, in
// source order.
type group struct {
	key   string // as written
	ident string // sanitized
	rows  [][]locdef.Value
}

// groupEntries groups a category's entries by key for shape
// inference. Groups come back sorted by identifier. Two distinct keys
// mapping to one identifier is an error: the collision would
// otherwise merge unrelated entries into a single constant.
func groupEntries(locale string, obj locdef.Object) ([]group, error) {
	var groups []group
	index := make(map[string]int)      // key -> index in groups
	byIdent := make(map[string]string) // identifier -> key
	for _, e := range obj.Entries {
		i, ok := index[e.Key]
		if !ok {
			ident := sanitizeKey(e.Key)
			if prev, ok := byIdent[ident]; ok {
				return nil, &DuplicateKeyError{
					Locale:   locale,
					Category: obj.Name,
					Ident:    ident,
					Keys:     []string{prev, e.Key},
				}
			}
			byIdent[ident] = e.Key
			i = len(groups)
			index[e.Key] = i
			groups = append(groups, group{key: e.Key, ident: ident})
		}
		groups[i].rows = append(groups[i].rows, e.Values)
	}
	slices.SortFunc(groups, func(a, b group) bool { return a.ident < b.ident })
	return groups, nil
}

// classify infers the constant form for one group. The empty shape
// stops the surrounding category; mixed operand kinds are an error.
func classify(locale, category string, g group) (shape, locdef.Kind, error) {
	if len(g.rows) == 1 {
		row := g.rows[0]
		switch {
		case len(row) == 0:
			return shapeEmpty, 0, nil
		case len(row) == 1:
			return shapeScalar, row[0].Kind(), nil
		}
	}
	k, ok := uniformKind(g.rows)
	if !ok {
		return 0, 0, &MixedTypesError{Locale: locale, Category: category, Key: g.key}
	}
	if len(g.rows) == 1 {
		return shapeVector, k, nil
	}
	return shapeMatrix, k, nil
}

// uniformKind reports the single kind of every value in every row.
// Rows without values do not constrain the kind; with no values at all
// the rows count as text.
func uniformKind(rows [][]locdef.Value) (locdef.Kind, bool) {
	kind, seen := locdef.KindText, false
	for _, row := range rows {
		for _, v := range row {
			if !seen {
				kind, seen = v.Kind(), true
			} else if v.Kind() != kind {
				return 0, false
			}
		}
	}
	return kind, true
}

// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"strings"
)

// A codeWriter accumulates generated Go source line by line.
type codeWriter struct {
	buf    bytes.Buffer
	indent int
}

// line writes one line at the current indentation.
func (w *codeWriter) line(format string, args ...any) {
	for i := 0; i < w.indent; i++ {
		w.buf.WriteByte('\t')
	}
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

// blank writes an empty line.
func (w *codeWriter) blank() {
	w.buf.WriteByte('\n')
}

func (w *codeWriter) in()  { w.indent++ }
func (w *codeWriter) out() { w.indent-- }

// doc writes a comment, one line per newline-separated element of
// text.
func (w *codeWriter) doc(text string) {
	for _, l := range strings.Split(text, "\n") {
		if l == "" {
			w.line("//")
		} else {
			w.line("// %s", l)
		}
	}
}

func (w *codeWriter) bytes() []byte { return w.buf.Bytes() }

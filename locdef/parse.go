// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locdef

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Defaults for the two header directives. A file may override them
// with comment_char and escape_char lines before its first category.
const (
	defaultComment = '%'
	defaultEscape  = '/'
)

// A ParseError reports a syntax error at a line of a definition file.
type ParseError struct {
	Locale string // locale (file base) name
	Line   int    // 1-based, first physical line of the logical line
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Locale, e.Line, e.Msg)
}

// ParseFile parses the locale definition file at path. The locale is
// named by the file's base name.
func ParseFile(path string) (name string, objects []Object, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	name = filepath.Base(path)
	objects, err = Parse(f, name)
	return name, objects, err
}

// Parse reads one locale definition and returns its categories in
// source order. name identifies the locale in errors.
func Parse(r io.Reader, name string) ([]Object, error) {
	p := &parser{
		name:    name,
		scan:    bufio.NewScanner(r),
		comment: defaultComment,
		escape:  defaultEscape,
	}
	p.scan.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return p.parse()
}

type parser struct {
	name    string
	scan    *bufio.Scanner
	line    int // number of the last physical line read
	start   int // number of the first physical line of the logical line
	comment byte
	escape  byte
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Locale: p.name, Line: p.start, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parse() ([]Object, error) {
	var (
		objects []Object
		cur     Object
		open    bool
		seen    = make(map[string]bool)
	)
	for {
		line, ok, err := p.nextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		key, rest := splitKeyword(line)
		switch {
		case !open:
			switch key {
			case "comment_char", "escape_char":
				c, err := p.directiveChar(key, rest)
				if err != nil {
					return nil, err
				}
				if key == "comment_char" {
					p.comment = c
				} else {
					p.escape = c
				}
			case "END":
				return nil, p.errorf("END %s outside a category", rest)
			default:
				if rest != "" {
					return nil, p.errorf("expected category name, got %q", line)
				}
				if seen[key] {
					return nil, p.errorf("duplicate category %s", key)
				}
				seen[key] = true
				cur = Object{Name: key}
				open = true
			}
		case key == "END":
			if rest != cur.Name {
				return nil, p.errorf("END %s does not close %s", rest, cur.Name)
			}
			objects = append(objects, cur)
			open = false
		default:
			values, err := p.operands(rest)
			if err != nil {
				return nil, err
			}
			cur.Entries = append(cur.Entries, Entry{Key: key, Values: values})
		}
	}
	if open {
		return nil, p.errorf("missing END %s", cur.Name)
	}
	return objects, nil
}

// nextLine returns the next logical line. Blank and comment lines are
// skipped, and a line ending in the escape character is joined with
// its successor.
func (p *parser) nextLine() (string, bool, error) {
	for {
		if !p.scan.Scan() {
			if err := p.scan.Err(); err != nil {
				return "", false, fmt.Errorf("%s: %v", p.name, err)
			}
			return "", false, nil
		}
		p.line++
		line := strings.TrimSpace(p.scan.Text())
		if line == "" || line[0] == p.comment {
			continue
		}
		p.start = p.line
		for strings.HasSuffix(line, string(p.escape)) {
			line = line[:len(line)-1]
			if !p.scan.Scan() {
				if err := p.scan.Err(); err != nil {
					return "", false, fmt.Errorf("%s: %v", p.name, err)
				}
				return "", false, p.errorf("continuation at end of file")
			}
			p.line++
			line += strings.TrimSpace(p.scan.Text())
		}
		return line, true, nil
	}
}

// splitKeyword splits a logical line into its keyword and the
// remainder.
func splitKeyword(line string) (key, rest string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i+1:], " \t")
}

// directiveChar reads the single-character operand of a comment_char
// or escape_char directive.
func (p *parser) directiveChar(key, rest string) (byte, error) {
	if len(rest) != 1 {
		return 0, p.errorf("%s wants a single character, got %q", key, rest)
	}
	return rest[0], nil
}

// operands parses the value list after an entry keyword. Operands are
// separated by semicolons. Double-quoted text decodes symbolic
// characters and escapes; a bare token of decimal digits becomes an
// integer; any other bare token is kept raw, up to the next
// semicolon.
func (p *parser) operands(s string) ([]Value, error) {
	var values []Value
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == ' ' || c == '\t' || c == ';':
			i++
		case c == '"':
			text, n, err := p.quoted(s[i:])
			if err != nil {
				return nil, err
			}
			values = append(values, Text(text))
			i += n
		default:
			j := i
			for j < len(s) && s[j] != ';' {
				j++
			}
			values = append(values, bareValue(strings.TrimRight(s[i:j], " \t")))
			i = j
		}
	}
	return values, nil
}

// quoted decodes the double-quoted operand at the start of s and
// returns the number of source bytes consumed.
func (p *parser) quoted(s string) (string, int, error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		if c == p.escape && i+1 < len(s) {
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		switch c {
		case '"':
			return b.String(), i + 1, nil
		case '<':
			r, n, err := symbolicChar(s[i:])
			if err != nil {
				return "", 0, p.errorf("%v", err)
			}
			if n > 0 {
				b.WriteRune(r)
				i += n
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return "", 0, p.errorf("unterminated string")
}

// symbolicChar decodes a <Uxxxx> reference at the start of s. It
// returns n == 0 when s does not start one; the caller then takes the
// '<' literally.
func symbolicChar(s string) (r rune, n int, err error) {
	if len(s) < 2 || s[1] != 'U' {
		return 0, 0, nil
	}
	j := 2
	for j < len(s) && isHex(s[j]) {
		j++
	}
	if j == 2 || j >= len(s) || s[j] != '>' {
		return 0, 0, nil
	}
	v, perr := strconv.ParseUint(s[2:j], 16, 32)
	if perr != nil || v > utf8.MaxRune {
		return 0, 0, fmt.Errorf("invalid symbolic character %s", s[:j+1])
	}
	return rune(v), j + 1, nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// bareValue classifies an unquoted operand: an optionally signed
// decimal token is an integer, anything else is raw text.
func bareValue(tok string) Value {
	if isInteger(tok) {
		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return Integer(n)
		}
	}
	return RawText(tok)
}

func isInteger(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

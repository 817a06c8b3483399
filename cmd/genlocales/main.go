// Copyright 2023 The golocales Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Genlocales compiles a directory of glibc locale definition files
// into a single Go source file.
//
// Usage:
//
//	genlocales [-o file] [-pkg name] [-config file] [-module path] [-exclude names] [-only names] [-v] dir
//
// Every regular file in dir is read as one locale definition, named
// after the file. The generated file declares one constant or
// variable per category key of every locale, a Locale enumeration
// over the compiled set, and accessor methods for the keys all
// locales share. It imports nothing and is written to standard
// output unless -o names a file.
//
// Genlocales accepts the following flags:
//
// -o file: Write the generated source to file instead of standard
// output.
//
// -pkg name: The package name of the generated file. The default is
// "locales".
//
// -config file: Read flag defaults from a YAML file with the keys
// output, package, module, exclude, and only. Flags given on the
// command line take precedence.
//
// -module path: Write a go.mod declaring the given module path next
// to the generated file, turning the output directory into a
// self-contained module. Requires -o.
//
// -exclude names: Skip the named categories in addition to the ones
// skipped by default (see gen.DefaultExcluded). Comma-separated.
//
// -only names: Compile only the named locales. Comma-separated.
//
// -v: Print progress messages.
//
// Locale names that do not resolve to a BCP 47 language tag are
// reported as warnings but still compiled; glibc ships a handful of
// definitions whose names predate the tag registry.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slog"
	"golang.org/x/mod/module"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/pitdicker/golocales/gen"
	"github.com/pitdicker/golocales/locdef"
)

func main() {
	err := runGen(os.Stdout, os.Args[1:])
	if err == nil {
		return
	}
	if _, ok := err.(*usageError); ok {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.Error(err.Error())
	os.Exit(1)
}

// runGen is the main function of genlocales. It is called by tests,
// so it writes to w instead of os.Stdout and returns an error instead
// of exiting.
func runGen(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("genlocales", flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	var (
		outPath    = fs.String("o", "", "write the generated source to `file` instead of standard output")
		pkgName    = fs.String("pkg", "", "package `name` of the generated file")
		configPath = fs.String("config", "", "read flag defaults from YAML `file`")
		modPath    = fs.String("module", "", "write a go.mod declaring module `path` next to the output")
		exclude    = fs.String("exclude", "", "comma-separated category `names` to skip")
		only       = fs.String("only", "", "comma-separated locale `names` to compile")
		verbose    = fs.Bool("v", false, "print progress messages")
	)
	if err := fs.Parse(args); err != nil {
		return &usageError{err: err}
	}
	slog.SetDefault(newLogger(*verbose))

	if fs.NArg() != 1 {
		return usageErrorf("expected exactly one definitions directory")
	}
	dir := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["o"] {
		*outPath = cfg.Output
	}
	if !set["pkg"] && cfg.Package != "" {
		*pkgName = cfg.Package
	}
	if !set["module"] && cfg.Module != "" {
		*modPath = cfg.Module
	}
	excluded := splitList(*exclude)
	if !set["exclude"] {
		excluded = cfg.Exclude
	}
	onlyNames := splitList(*only)
	if !set["only"] {
		onlyNames = cfg.Only
	}

	if *modPath != "" {
		if *outPath == "" {
			return usageErrorf("-module requires -o")
		}
		if err := module.CheckPath(*modPath); err != nil {
			return usageErrorf("invalid module path %q: %v", *modPath, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		files = append(files, e.Name())
	}
	if len(onlyNames) > 0 {
		want := make(map[string]bool, len(onlyNames))
		for _, name := range onlyNames {
			want[name] = true
		}
		var kept []string
		for _, name := range files {
			if want[name] {
				kept = append(kept, name)
				want[name] = false
			}
		}
		for _, name := range onlyNames {
			if want[name] {
				slog.Warn("requested locale not found", "locale", name)
			}
		}
		files = kept
	}
	if len(files) == 0 {
		return fmt.Errorf("%s: no locale definitions to compile", dir)
	}
	lintNames(files)

	objs := make([][]locdef.Object, len(files))
	var group errgroup.Group
	for i, name := range files {
		i, name := i, name
		group.Go(func() error {
			locale, objects, err := locdef.ParseFile(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			slog.Debug("parsed definition", "locale", locale, "categories", len(objects))
			objs[i] = objects
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	table := make(locdef.Table, len(files))
	for i, name := range files {
		table[name] = objs[i]
	}
	slog.Info("compiling locales", "count", len(files))

	src, err := gen.Generate(table, &gen.Options{Package: *pkgName, Exclude: excluded})
	if err != nil {
		return err
	}
	target := *outPath
	if target == "" {
		target = "tables.go"
	}
	src, err = imports.Process(target, src, nil)
	if err != nil {
		return fmt.Errorf("formatting %s: %v", target, err)
	}

	if *outPath == "" {
		_, err := w.Write(src)
		return err
	}
	if err := os.WriteFile(*outPath, src, 0666); err != nil {
		return err
	}
	slog.Info("wrote locale tables", "path", *outPath, "bytes", len(src))
	if *modPath != "" {
		gomod := filepath.Join(filepath.Dir(*outPath), "go.mod")
		data := fmt.Sprintf("module %s\n\ngo 1.20\n", *modPath)
		if err := os.WriteFile(gomod, []byte(data), 0666); err != nil {
			return err
		}
		slog.Info("wrote module file", "path", gomod)
	}
	return nil
}

// newLogger returns the process logger. Warnings always print;
// verbose mode adds progress messages. Timestamps carry no
// information in a one-shot tool and are dropped.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// lintNames warns about locale names that do not look like language
// tags. glibc uses underscores where BCP 47 uses hyphens, and the
// @modifier suffix has no tag equivalent, so both are rewritten
// before parsing.
func lintNames(names []string) {
	for _, name := range names {
		if name == "POSIX" || name == "C" {
			continue
		}
		tag := name
		if i := strings.IndexByte(tag, '@'); i >= 0 {
			tag = tag[:i]
		}
		tag = strings.ReplaceAll(tag, "_", "-")
		if _, err := language.Parse(tag); err != nil {
			slog.Warn("locale name is not a language tag", "locale", name, "err", err)
		}
	}
}

// splitList splits a comma-separated flag value, dropping empty
// elements.
func splitList(s string) []string {
	var out []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

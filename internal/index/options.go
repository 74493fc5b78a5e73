// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index generates index.md navigation pages for a tree of Stan
// model examples. A directory holding .stan files gets a Stan Playground
// embed document; every other directory gets a plain listing of links to
// its subdirectories and files. Existing index files are always
// overwritten.
package index

import (
	"os"
	"strings"

	"github.com/pdiddy/stan-pages/pkg/types"
)

// Matcher reports whether path should be skipped during traversal. It is
// satisfied by gitignore.IgnoreMatcher from monochromegane/go-gitignore.
type Matcher interface {
	Match(path string, isDir bool) bool
}

// Options controls a generation run.
type Options struct {
	// OutputName is the index filename written into each directory.
	OutputName string

	// ScriptURL is the embed script included in embed-style documents.
	ScriptURL string

	// ExcludeDirs lists directory names never visited. Hidden directories
	// (leading ".") are always excluded regardless of this list.
	ExcludeDirs []string

	// Ignore, when non-nil, additionally excludes matched directories.
	Ignore Matcher
}

// OptionsFromConfig builds Options from a GeneratorConfig, applying
// defaults for unset fields.
func OptionsFromConfig(cfg types.GeneratorConfig) Options {
	cfg.ApplyDefaults()
	return Options{
		OutputName:  cfg.OutputName,
		ScriptURL:   cfg.ScriptURL,
		ExcludeDirs: cfg.ExcludeDirs,
	}
}

// skipDir reports whether the directory entry name at path is excluded
// from traversal. The check applies at every level of recursion, not only
// at the root.
func (o Options) skipDir(path, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, d := range o.ExcludeDirs {
		if name == d {
			return true
		}
	}
	if o.Ignore != nil && o.Ignore.Match(path, true) {
		return true
	}
	return false
}

// readDirUnsorted returns dir's entries in raw directory order. os.ReadDir
// sorts by filename; embed blocks must follow file-system enumeration
// order instead.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

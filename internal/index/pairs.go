// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	stanExt = ".stan"
	dataExt = ".data.json"
)

// Pair is a Stan model file and its optional companion data file. Data is
// empty when no companion with the same base name exists; the model is
// still embedded, just without default input data.
type Pair struct {
	Stan string
	Data string
}

// FindPairs scans the immediate entries of dir for .stan files and matches
// each with a same-base .data.json companion if one exists. The check is
// non-recursive and case-sensitive. Results follow directory enumeration
// order, not lexicographic order.
func FindPairs(dir string) ([]Pair, error) {
	entries, err := readDirUnsorted(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var pairs []Pair
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), stanExt) {
			continue
		}
		p := Pair{Stan: e.Name()}
		companion := strings.TrimSuffix(e.Name(), stanExt) + dataExt
		if _, err := os.Stat(filepath.Join(dir, companion)); err == nil {
			p.Data = companion
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// HasStanDescendant reports whether dir itself contains .stan files, or
// any non-excluded subdirectory does, recursively. The walk is depth-first
// and stops as soon as an answer is known. Unreadable directories count as
// having no models.
func HasStanDescendant(dir string, opts Options) bool {
	if pairs, err := FindPairs(dir); err == nil && len(pairs) > 0 {
		return true
	}

	entries, err := readDirUnsorted(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() || opts.skipDir(filepath.Join(dir, e.Name()), e.Name()) {
			continue
		}
		if HasStanDescendant(filepath.Join(dir, e.Name()), opts) {
			return true
		}
	}
	return false
}

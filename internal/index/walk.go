// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stats accumulates counters over one traversal. A fresh value is used
// per run; nothing is persisted.
type Stats struct {
	Scanned int
	Created int
	Updated int
	Errors  int
}

// Written returns the number of index files written in the run.
func (s Stats) Written() int {
	return s.Created + s.Updated
}

// WriteIndex unconditionally overwrites the index file in dir with
// content. It reports true when the file did not exist before.
func WriteIndex(dir, content string, opts Options) (created bool, err error) {
	path := filepath.Join(dir, opts.OutputName)
	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return !existed, nil
}

// Run visits root and every descendant directory reachable without
// crossing an excluded directory, top-down, writing one index file per
// directory. Per-directory status lines and a final summary go to w.
// Write failures are tallied and logged; they do not abort the traversal.
func Run(root string, opts Options, w io.Writer) Stats {
	var stats Stats
	runDir(root, opts, w, &stats)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "=======")
	fmt.Fprintf(w, "Directories scanned: %d\n", stats.Scanned)
	fmt.Fprintf(w, "Index files created: %d\n", stats.Created)
	fmt.Fprintf(w, "Index files updated: %d\n", stats.Updated)
	fmt.Fprintf(w, "Errors encountered:  %d\n", stats.Errors)

	return stats
}

// runDir processes dir, then recurses into each non-excluded
// subdirectory in enumeration order.
func runDir(dir string, opts Options, w io.Writer, stats *Stats) {
	stats.Scanned++
	processDir(dir, opts, w, stats)

	entries, err := readDirUnsorted(dir)
	if err != nil {
		fmt.Fprintf(w, "  error reading %s: %v\n", dir, err)
		stats.Errors++
		return
	}
	for _, e := range entries {
		if e.IsDir() && !opts.skipDir(filepath.Join(dir, e.Name()), e.Name()) {
			runDir(filepath.Join(dir, e.Name()), opts, w, stats)
		}
	}
}

// processDir renders and writes the index file for a single directory.
// The document style depends only on dir's own immediate .stan files, not
// on descendants.
func processDir(dir string, opts Options, w io.Writer, stats *Stats) {
	pairs, err := FindPairs(dir)
	if err != nil {
		fmt.Fprintf(w, "  error scanning %s: %v\n", dir, err)
		stats.Errors++
		return
	}

	var content string
	if len(pairs) > 0 {
		fmt.Fprintf(w, "Found %d Stan model(s) in %s\n", len(pairs), dir)
		for _, p := range pairs {
			if p.Data != "" {
				fmt.Fprintf(w, "  - %s + %s\n", p.Stan, p.Data)
			} else {
				fmt.Fprintf(w, "  - %s\n", p.Stan)
			}
		}
		content, err = RenderEmbedIndex(dir, pairs, opts)
	} else {
		content, err = RenderPlainIndex(dir, opts)
	}
	if err != nil {
		fmt.Fprintf(w, "  error rendering %s: %v\n", dir, err)
		stats.Errors++
		return
	}

	path := filepath.Join(dir, opts.OutputName)
	created, err := WriteIndex(dir, content, opts)
	if err != nil {
		fmt.Fprintf(w, "  error writing %s: %v\n", path, err)
		stats.Errors++
		return
	}
	if created {
		fmt.Fprintf(w, "  created %s\n", path)
		stats.Created++
	} else {
		fmt.Fprintf(w, "  updated %s\n", path)
		stats.Updated++
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// RenderPlainIndex produces the navigation document for a directory with
// no immediate .stan files: a title header, links to subdirectories split
// by whether they (recursively) contain Stan models, and links to all
// immediate files. Sections with no entries are omitted entirely.
func RenderPlainIndex(dir string, opts Options) (string, error) {
	entries, err := readDirUnsorted(dir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}

	var withStan, other, files []string
	for _, e := range entries {
		if e.IsDir() {
			if opts.skipDir(filepath.Join(dir, e.Name()), e.Name()) {
				continue
			}
			if HasStanDescendant(filepath.Join(dir, e.Name()), opts) {
				withStan = append(withStan, e.Name())
			} else {
				other = append(other, e.Name())
			}
		} else if e.Name() != opts.OutputName {
			files = append(files, e.Name())
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", dirTitle(dir))

	if len(withStan) > 0 {
		sort.Strings(withStan)
		b.WriteString("## Subdirectories with Stan Files\n\n")
		for _, name := range withStan {
			fmt.Fprintf(&b, "- [%s](./%s/)\n", name, name)
		}
		b.WriteString("\n")
	}

	if len(other) > 0 {
		sort.Strings(other)
		b.WriteString("## Other Subdirectories\n\n")
		for _, name := range other {
			fmt.Fprintf(&b, "- [%s](./%s/)\n", name, name)
		}
		b.WriteString("\n")
	}

	if len(files) > 0 {
		sort.Strings(files)
		b.WriteString("## Files\n\n")
		for _, name := range files {
			fmt.Fprintf(&b, "- [%s](./%s)\n", name, name)
		}
	}

	return b.String(), nil
}

// RenderEmbedIndex produces the document for a directory with immediate
// .stan files: the embed script tag, one embed block per pair in the
// given order, then a sorted Files section. The data attribute appears
// only when a companion exists; consecutive embed blocks are separated by
// a blank line.
func RenderEmbedIndex(dir string, pairs []Pair, opts Options) (string, error) {
	entries, err := readDirUnsorted(dir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && e.Name() != opts.OutputName {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	var b strings.Builder
	fmt.Fprintf(&b, "<script src=%q></script>\n\n", opts.ScriptURL)

	for i, p := range pairs {
		fmt.Fprintf(&b, "## %s\n\n", p.Stan)
		b.WriteString("<stan-playground-embed\n")
		if p.Data != "" {
			fmt.Fprintf(&b, "    data=\"./%s\"\n", p.Data)
		}
		fmt.Fprintf(&b, "    stan=\"./%s\"\n", p.Stan)
		b.WriteString(">\n")
		b.WriteString("<iframe width=\"100%\" height=\"800px\"></iframe>\n")
		b.WriteString("</stan-playground-embed>\n")
		if len(pairs) > 1 && i < len(pairs)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n## Files\n\n")
	for _, name := range files {
		fmt.Fprintf(&b, "- [%s](./%s)\n", name, name)
	}

	return b.String(), nil
}

// dirTitle returns the directory's own name for the title header. The
// path is resolved first so "." yields the working directory's name
// rather than ".".
func dirTitle(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.Base(abs)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fixtureTree builds a small example repository:
//
//	root/
//	  a.stan + a.data.json
//	  b.stan (no companion)
//	  sub/            (empty)
//	  docs/guide.md
//	  node_modules/pkg/x.js
//	  .git/config
func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.stan":                "data {}",
		"a.data.json":           "{}",
		"b.stan":                "data {}",
		"sub/":                  "",
		"docs/guide.md":         "guide",
		"node_modules/pkg/x.js": "",
		".git/config":           "",
	})
	return root
}

func TestRun(t *testing.T) {
	root := fixtureTree(t)
	var log bytes.Buffer

	stats := Run(root, defaultOptions(), &log)

	// root, sub, docs. node_modules and .git are excluded.
	if stats.Scanned != 3 {
		t.Errorf("Scanned = %d, want 3", stats.Scanned)
	}
	if stats.Created != 3 || stats.Updated != 0 || stats.Errors != 0 {
		t.Errorf("stats = %+v, want 3 created, 0 updated, 0 errors", stats)
	}

	for _, rel := range []string{"index.md", "sub/index.md", "docs/index.md"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	for _, rel := range []string{"node_modules/index.md", "node_modules/pkg/index.md", ".git/index.md"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err == nil {
			t.Errorf("excluded directory received an index file: %s", rel)
		}
	}

	if !strings.Contains(log.String(), "Directories scanned: 3") {
		t.Errorf("summary missing from log:\n%s", log.String())
	}
}

func TestRun_DocumentStyles(t *testing.T) {
	root := fixtureTree(t)
	Run(root, defaultOptions(), &bytes.Buffer{})

	rootDoc, err := os.ReadFile(filepath.Join(root, "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rootDoc), "<stan-playground-embed") {
		t.Error("root index should be embed-style")
	}
	if !strings.Contains(string(rootDoc), `data="./a.data.json"`) {
		t.Error("paired model missing data attribute")
	}
	if strings.Contains(string(rootDoc), `data="./b.data.json"`) {
		t.Error("unpaired model must not carry a data attribute")
	}

	subDoc, err := os.ReadFile(filepath.Join(root, "sub", "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	want := "# sub\n\n"
	if string(subDoc) != want {
		t.Errorf("sub/index.md = %q, want %q", subDoc, want)
	}

	docsDoc, err := os.ReadFile(filepath.Join(root, "docs", "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(docsDoc), "<script") {
		t.Error("plain index must not include the embed script tag")
	}
	if !strings.Contains(string(docsDoc), "- [guide.md](./guide.md)") {
		t.Errorf("docs index missing file link:\n%s", docsDoc)
	}
}

// An ancestor with no immediate models links to a modeling descendant in
// its "with Stan Files" section while keeping the plain document form.
func TestRun_AncestorLinksToModelingDescendant(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"examples/radon/radon.stan": "data {}",
	})

	Run(root, defaultOptions(), &bytes.Buffer{})

	doc, err := os.ReadFile(filepath.Join(root, "examples", "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(doc), "<stan-playground-embed") {
		t.Error("examples/ has no immediate models; index must be plain-style")
	}
	if !strings.Contains(string(doc), "## Subdirectories with Stan Files\n\n- [radon](./radon/)") {
		t.Errorf("examples index does not link radon under Stan subdirectories:\n%s", doc)
	}
}

func TestRun_Idempotent(t *testing.T) {
	root := fixtureTree(t)

	// First run creates the index files; the tree is unchanged afterwards.
	Run(root, defaultOptions(), &bytes.Buffer{})

	read := func() map[string]string {
		t.Helper()
		out := map[string]string{}
		for _, rel := range []string{"index.md", "sub/index.md", "docs/index.md"} {
			data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				t.Fatal(err)
			}
			out[rel] = string(data)
		}
		return out
	}

	stats2 := Run(root, defaultOptions(), &bytes.Buffer{})
	second := read()
	stats3 := Run(root, defaultOptions(), &bytes.Buffer{})
	third := read()

	for _, s := range []Stats{stats2, stats3} {
		if s.Created != 0 || s.Updated != 3 {
			t.Errorf("rerun stats = %+v, want 0 created, 3 updated", s)
		}
	}
	for rel, content := range second {
		if third[rel] != content {
			t.Errorf("%s changed between identical runs", rel)
		}
	}
}

func TestWriteIndex(t *testing.T) {
	dir := t.TempDir()
	opts := defaultOptions()

	created, err := WriteIndex(dir, "first\n", opts)
	if err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	if !created {
		t.Error("first write should report created")
	}

	created, err = WriteIndex(dir, "second\n", opts)
	if err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	if created {
		t.Error("overwrite should report updated")
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second\n" {
		t.Errorf("content = %q, want %q", data, "second\n")
	}
}

func TestRun_WriteFailureTalliedNotFatal(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("write permissions are not enforced for root")
	}
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"locked/readme.txt": "",
		"open/readme.txt":   "",
	})
	if err := os.Chmod(filepath.Join(root, "locked"), 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(filepath.Join(root, "locked"), 0o755) })

	var log bytes.Buffer
	stats := Run(root, defaultOptions(), &log)

	if stats.Errors != 1 {
		t.Errorf("Errors = %d, want 1", stats.Errors)
	}
	if _, err := os.Stat(filepath.Join(root, "open", "index.md")); err != nil {
		t.Error("traversal should continue past a failed write")
	}
	if !strings.Contains(log.String(), "error writing") {
		t.Errorf("log missing write diagnostic:\n%s", log.String())
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ignore loads the optional root-level .gitignore consulted when
// deciding which directories to skip during generation.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
)

// Load returns a matcher for root/.gitignore. A missing .gitignore is not
// an error; Load returns nil and the caller skips nothing extra. Nested
// .gitignore files are not consulted.
func Load(root string) (gitignore.IgnoreMatcher, error) {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	m, err := gitignore.NewGitIgnore(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

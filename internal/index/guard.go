// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// guardFile is the document checked before any traversal begins.
const guardFile = "README.md"

// CheckGuard verifies that the tree at root is the repository this tool
// is meant to run against: root/README.md must exist and its content must
// begin with the given literal heading. Nothing has been written and no
// directory has been visited when CheckGuard returns an error.
func CheckGuard(root, heading string) error {
	path := filepath.Join(root, guardFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("guard check: reading %s: %w", path, err)
	}
	if !strings.HasPrefix(string(data), heading) {
		return fmt.Errorf("guard check: %s does not begin with %q; refusing to write index files", path, heading)
	}
	return nil
}

package build

import (
	"fmt"
	"os"
	"path/filepath"
)

// PostProcess normalizes the artifact layout for c. On platforms whose
// generator nests output under a <BuildType>/ directory it moves every
// regular file up into c.OutputDir and removes the directory; elsewhere it
// does nothing. It returns the destination paths of moved files.
func PostProcess(c Configuration) ([]string, error) {
	if !c.Relocates() {
		return nil, nil
	}
	return Relocate(c.OutputDir, string(c.BuildType))
}

// Relocate moves each file in parent/sub into parent, then removes
// parent/sub. A symlink whose target is a regular file counts as a file and
// is moved as a link. Other entries stay behind, which makes the final
// removal fail.
func Relocate(parent, sub string) ([]string, error) {
	nested := filepath.Join(parent, sub)

	entries, err := os.ReadDir(nested)
	if err != nil {
		return nil, &ArtifactRelocationFailedError{Path: nested, Err: err}
	}

	// Classify every entry before moving any; relative links resolve
	// against siblings that are about to move.
	var files []string
	for _, e := range entries {
		info, err := os.Stat(filepath.Join(nested, e.Name()))
		if err == nil && info.Mode().IsRegular() {
			files = append(files, e.Name())
		}
	}

	var moved []string
	for _, name := range files {
		src := filepath.Join(nested, name)
		dst := filepath.Join(parent, name)
		if err := os.Rename(src, dst); err != nil {
			return moved, &ArtifactRelocationFailedError{Path: src, Err: err}
		}
		moved = append(moved, dst)
	}

	if err := os.Remove(nested); err != nil {
		return moved, &ArtifactRelocationFailedError{Path: nested, Err: fmt.Errorf("removing directory: %w", err)}
	}
	return moved, nil
}

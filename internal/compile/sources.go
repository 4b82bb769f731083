// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"kindling-cli/pkg/types"
)

// EnumerateSources collects all regular files under root (recursively,
// following symbolic links) whose name ends in suffix. The result is sorted
// lexicographically so diagnostics are reproducible across runs.
//
// An empty result is a NoSourceError. A root that cannot be read at all is
// reported as a plain I/O error, not a NoSourceError.
func EnumerateSources(root types.FilesystemPath, suffix string) ([]types.FilesystemPath, error) {
	seen := make(map[string]struct{})

	var files []string
	if err := walkFollowingLinks(root.String(), suffix, seen, &files); err != nil {
		return nil, fmt.Errorf("failed to enumerate sources under %s: %w", root, err)
	}

	if len(files) == 0 {
		return nil, &NoSourceError{Root: root, Suffix: suffix}
	}

	sort.Strings(files)
	paths := make([]types.FilesystemPath, len(files))
	for i, f := range files {
		paths[i] = types.FilesystemPath(f)
	}
	return paths, nil
}

// walkFollowingLinks is a recursive directory walk that resolves symlinks.
// seen holds resolved directory paths so a symlink cycle terminates instead
// of recursing forever.
func walkFollowingLinks(dir, suffix string, seen map[string]struct{}, files *[]string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	if _, ok := seen[resolved]; ok {
		return nil
	}
	seen[resolved] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat (not Lstat) so symlinked files and directories are followed.
		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		switch {
		case info.IsDir():
			if err := walkFollowingLinks(path, suffix, seen, files); err != nil {
				return err
			}
		case info.Mode().IsRegular() && strings.HasSuffix(entry.Name(), suffix):
			*files = append(*files, path)
		}
	}
	return nil
}

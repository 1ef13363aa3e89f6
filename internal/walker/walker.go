// Package walker discovers Solidity source files for the checker.
package walker

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// sourceExtension is the file extension the walker collects.
const sourceExtension = ".sol"

// skipDirs are directories never descended into: vendored dependencies
// and build output in a Foundry project layout.
var skipDirs = map[string]bool{
	"lib":          true,
	"node_modules": true,
	"out":          true,
	"cache":        true,
	".git":         true,
}

// Walker discovers source files under a root directory.
type Walker struct {
	logger *slog.Logger
}

// New creates a walker. A nil logger discards progress output.
func New(logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Walker{logger: logger}
}

// Discover resolves each target to an ordered list of source file
// paths. A directory target is walked recursively in lexical order; a
// file target is included as-is. The result preserves target order, so
// files are later checked and reported in the order they were
// discovered.
func (w *Walker) Discover(targets []string) ([]string, error) {
	var paths []string
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", target, err)
		}

		if !info.IsDir() {
			paths = append(paths, target)
			continue
		}

		found, err := w.walkDir(target)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}

	w.logger.Debug("discovery complete", "targets", len(targets), "files", len(paths))
	return paths, nil
}

// walkDir collects .sol files below root, skipping vendored and build
// directories.
func (w *Walker) walkDir(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				w.logger.Debug("skipping directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), sourceExtension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return paths, nil
}

package util

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirNames are directory names never descended into during traversal:
// version-control metadata and dependency caches / build output. This is
// fixed policy, not configuration.
var skipDirNames = map[string]struct{}{
	".git":         {},
	".svn":         {},
	".hg":          {},
	".idea":        {},
	"node_modules": {},
	"vendor":       {},
	"Pods":         {},
	".gradle":      {},
	"target":       {},
	"build":        {},
	"dist":         {},
	"DerivedData":  {},
}

// skipPathGlobs are additional exclusion patterns matched against the
// slash-separated directory path relative to the repository root. They
// cover cache directories whose names are not fixed strings.
var skipPathGlobs = []string{
	"**/__pycache__",
	"**/*.egg-info",
	"**/.*cache",
}

// ShouldSkipDir reports whether a directory should be excluded from traversal
func ShouldSkipDir(name string) bool {
	_, ok := skipDirNames[name]
	return ok
}

// ShouldSkipPath reports whether a relative path matches an exclusion glob
func ShouldSkipPath(relPath string) bool {
	slashPath := filepath.ToSlash(relPath)
	for _, pattern := range skipPathGlobs {
		if matched, _ := doublestar.Match(pattern, slashPath); matched {
			return true
		}
	}
	return false
}

// AddUnique appends item to list if not already present, preserving order
func AddUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

// RelPath returns path relative to root with forward slashes, falling back
// to the original path when it is not under root.
func RelPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

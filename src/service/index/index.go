package index

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"repo-analyzer/src/util"
)

// contentCacheSize bounds the number of file contents held in memory.
// Manifest files are read by several analyzers in one run; the cache keeps
// each read from hitting the disk more than once.
const contentCacheSize = 128

// RepoIndex is an in-memory index of repository files, built with a single
// filesystem traversal. It is read-only after Build: every analyzer consumes
// the same index and none re-walks the tree.
type RepoIndex struct {
	root    string
	files   []string
	byName  map[string][]string
	byExt   map[string]struct{}
	content *lru.Cache[string, string]
}

// Build walks the repository once and indexes every regular file.
// It fails if root does not exist or is not a directory. Per-file errors
// (permission denied, broken symlinks) are skipped; symlinks are not
// followed. Traversal order is the lexical order of filepath.WalkDir, so
// it is stable across runs over an unchanged tree.
func Build(root string) (*RepoIndex, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("repository root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root %s is not a directory", root)
	}

	cache, err := lru.New[string, string](contentCacheSize)
	if err != nil {
		return nil, err
	}

	idx := &RepoIndex{
		root:    root,
		byName:  make(map[string][]string),
		byExt:   make(map[string]struct{}),
		content: cache,
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries degrade to absence
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root {
				if util.ShouldSkipDir(d.Name()) || util.ShouldSkipPath(util.RelPath(root, path)) {
					return fs.SkipDir
				}
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		idx.files = append(idx.files, path)
		name := d.Name()
		idx.byName[name] = append(idx.byName[name], path)
		if ext := strings.TrimPrefix(filepath.Ext(name), "."); ext != "" {
			idx.byExt[ext] = struct{}{}
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking repository %s: %w", root, walkErr)
	}

	return idx, nil
}

// Root returns the repository root path
func (idx *RepoIndex) Root() string {
	return idx.root
}

// Files returns all indexed file paths in traversal order
func (idx *RepoIndex) Files() []string {
	return idx.files
}

// HasFile reports whether any file with the exact name exists
func (idx *RepoIndex) HasFile(name string) bool {
	return len(idx.byName[name]) > 0
}

// FilesWithName returns all files with the exact, case-sensitive name,
// in traversal order. Returns an empty slice when nothing matches.
func (idx *RepoIndex) FilesWithName(name string) []string {
	return idx.byName[name]
}

// HasExtension reports whether any file with the given extension exists.
// The extension is matched without a leading dot.
func (idx *RepoIndex) HasExtension(ext string) bool {
	_, ok := idx.byExt[ext]
	return ok
}

// HasPathPattern reports whether any file path contains the substring
func (idx *RepoIndex) HasPathPattern(pattern string) bool {
	for _, path := range idx.files {
		if strings.Contains(filepath.ToSlash(path), pattern) {
			return true
		}
	}
	return false
}

// FilesWithExtensions returns all files whose extension matches any of the
// given extensions, in traversal order.
func (idx *RepoIndex) FilesWithExtensions(exts []string) []string {
	var matched []string
	for _, path := range idx.files {
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		for _, want := range exts {
			if ext == want {
				matched = append(matched, path)
				break
			}
		}
	}
	return matched
}

// ReadFile returns the contents of an indexed file, served from the content
// cache after the first read. Errors are returned as-is so callers can
// degrade to absence.
func (idx *RepoIndex) ReadFile(path string) (string, error) {
	if content, ok := idx.content.Get(path); ok {
		return content, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	content := string(data)
	idx.content.Add(path, content)
	return content, nil
}

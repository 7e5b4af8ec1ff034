// Package local resolves data file patterns against a local filesystem
// tree. Relative patterns are expanded recursively under a base
// directory, absolute patterns are expanded from the filesystem root.
package local

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/HemansAI/datasets/internal/core/domain"
	"github.com/HemansAI/datasets/internal/logger"
)

// Resolver expands patterns under one base directory.
type Resolver struct {
	basePath string
}

// NewResolver creates a resolver rooted at basePath.
// An empty basePath defaults to the current working directory.
func NewResolver(basePath string) *Resolver {
	if basePath == "" {
		basePath = "."
	}
	if abs, err := filepath.Abs(basePath); err == nil {
		basePath = abs
	}
	return &Resolver{basePath: basePath}
}

// Location returns the base directory searched by this resolver.
func (r *Resolver) Location() string {
	return r.basePath
}

// Resolve returns the sorted absolute paths of all files matching the
// pattern. Directories, dotfiles and ignore-listed sidecar files are
// filtered out. When allowedExtensions is non-nil, files without an
// allowed extension are dropped and logged.
//
// An empty result is an error only when the pattern holds no wildcard
// characters: the user asked for an exact path that does not exist.
func (r *Resolver) Resolve(pattern string, allowedExtensions []string) ([]string, error) {
	globPattern := pattern
	if domain.IsRelativePath(pattern) {
		// rglob semantics: ** matches zero or more directories, so the
		// pattern also matches directly under the base path.
		globPattern = filepath.Join(r.basePath, "**", pattern)
	}

	matches, err := doublestar.FilepathGlob(globPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: bad pattern %q: %v", domain.ErrInvalidInput, pattern, err)
	}

	var matched []string
	for _, match := range matches {
		name := filepath.Base(match)
		if domain.IsIgnorableName(name) {
			continue
		}
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(match)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", match, err)
		}
		matched = append(matched, abs)
	}

	out := matched
	if allowedExtensions != nil {
		out = out[:0]
		var excluded []string
		for _, path := range matched {
			if domain.HasAllowedExtension(filepath.Base(path), allowedExtensions) {
				out = append(out, path)
			} else {
				excluded = append(excluded, path)
			}
		}
		if len(excluded) > 0 {
			logger.Info("Some files matched the pattern %q at %s but don't have valid data file extensions: %v",
				pattern, r.basePath, excluded)
		}
	}

	if len(out) == 0 && !domain.ContainsWildcards(pattern) {
		if allowedExtensions != nil {
			return nil, fmt.Errorf("%w: unable to find %q at %s with any supported extension %v",
				domain.ErrNotFound, pattern, r.basePath, allowedExtensions)
		}
		return nil, fmt.Errorf("%w: unable to find %q at %s", domain.ErrNotFound, pattern, r.basePath)
	}

	sort.Strings(out)
	return out, nil
}

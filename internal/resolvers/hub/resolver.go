package hub

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/HemansAI/datasets/internal/core/domain"
	"github.com/HemansAI/datasets/internal/logger"
)

// Resolver expands patterns against the flat file listing of one
// repository revision. It returns repository-relative paths; mapping them
// to download URLs is the caller's job (see RawURL).
type Resolver struct {
	info *domain.DatasetInfo
}

// NewResolver creates a resolver over a repository listing.
func NewResolver(info *domain.DatasetInfo) *Resolver {
	return &Resolver{info: info}
}

// Location returns the repository id searched by this resolver.
func (r *Resolver) Location() string {
	return r.info.ID
}

// Resolve returns the sorted relative paths of listing entries matching
// the pattern. Each path gets a synthetic leading separator before
// matching so that patterns like "**/*" also match files at the listing
// root, and relative patterns match at any depth. Filtering and the
// wildcard-vs-exact empty-match policy are shared with the local
// resolver.
func (r *Resolver) Resolve(pattern string, allowedExtensions []string) ([]string, error) {
	matchPattern := pattern
	if !strings.HasPrefix(pattern, "/") {
		matchPattern = "/**/" + pattern
	}

	var matched []string
	for _, sibling := range r.info.Siblings {
		if domain.IsIgnorableName(path.Base(sibling)) {
			continue
		}
		ok, err := doublestar.Match(matchPattern, "/"+sibling)
		if err != nil {
			return nil, fmt.Errorf("%w: bad pattern %q: %v", domain.ErrInvalidInput, pattern, err)
		}
		if ok {
			matched = append(matched, sibling)
		}
	}

	out := matched
	if allowedExtensions != nil {
		out = out[:0]
		var excluded []string
		for _, relPath := range matched {
			if domain.HasAllowedExtension(path.Base(relPath), allowedExtensions) {
				out = append(out, relPath)
			} else {
				excluded = append(excluded, relPath)
			}
		}
		if len(excluded) > 0 {
			logger.Info("Some files matched the pattern %q in dataset repository %s but don't have valid data file extensions: %v",
				pattern, r.info.ID, excluded)
		}
	}

	if len(out) == 0 && !domain.ContainsWildcards(pattern) {
		if allowedExtensions != nil {
			return nil, fmt.Errorf("%w: unable to find %q in dataset repository %s with any supported extension %v",
				domain.ErrNotFound, pattern, r.info.ID, allowedExtensions)
		}
		return nil, fmt.Errorf("%w: unable to find %q in dataset repository %s",
			domain.ErrNotFound, pattern, r.info.ID)
	}

	sort.Strings(out)
	return out, nil
}

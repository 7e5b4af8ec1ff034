package hub

import (
	"net/url"
	"strings"
)

// rawContentHost serves repository files by path and revision.
const rawContentHost = "https://raw.githubusercontent.com"

// RawURL builds the download URL for a repository file at a revision.
// Pure function, no I/O.
func RawURL(repoID, relPath, revision string) string {
	segments := []string{rawContentHost}
	for _, part := range strings.Split(repoID, "/") {
		segments = append(segments, url.PathEscape(part))
	}
	segments = append(segments, url.PathEscape(revision))
	for _, part := range strings.Split(relPath, "/") {
		segments = append(segments, url.PathEscape(part))
	}
	return strings.Join(segments, "/")
}

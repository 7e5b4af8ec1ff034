package driven

import (
	"context"

	"github.com/HemansAI/datasets/internal/core/domain"
)

// HubAPI fetches repository metadata from a dataset hub.
type HubAPI interface {
	// DatasetInfo resolves the revision (default branch head when empty)
	// and returns the flat file listing of the repository at that revision.
	DatasetInfo(ctx context.Context, repoID, revision string) (*domain.DatasetInfo, error)
}

// ETagFetcher fetches the HTTP cache validator of a remote file without
// downloading its content. Implementations must be safe for concurrent
// use, the origin fetcher fans requests out across workers.
type ETagFetcher interface {
	// FetchETag issues a metadata-only request for the URL. The credential
	// is an opaque bearer token, forwarded unchanged; empty means anonymous.
	FetchETag(ctx context.Context, url, credential string) (string, error)
}

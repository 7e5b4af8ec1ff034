package hub

import (
	"context"
	"fmt"
	"net/http"
)

// ETagFetcher fetches HTTP cache validators with metadata-only requests.
// Safe for concurrent use; the underlying http.Client is shared.
type ETagFetcher struct {
	client *http.Client
}

// NewETagFetcher creates a fetcher with the default timeout.
func NewETagFetcher() *ETagFetcher {
	return &ETagFetcher{client: &http.Client{Timeout: DefaultTimeout}}
}

// FetchETag issues a HEAD request for the URL and returns the ETag
// header. The credential is forwarded unchanged as a bearer token when
// non-empty. A non-2xx status or a missing validator is an error.
func (f *ETagFetcher) FetchETag(ctx context.Context, url, credential string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("head %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("head %s: unexpected status %d", url, resp.StatusCode)
	}

	etag := resp.Header.Get("ETag")
	if etag == "" {
		return "", fmt.Errorf("head %s: response carries no ETag validator", url)
	}
	return etag, nil
}

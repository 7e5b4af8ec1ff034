// Package hub resolves data file patterns against a hosted, versioned
// dataset repository. The repository is identified as "owner/name" and a
// revision; the file listing comes from the git tree at that revision.
package hub

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/HemansAI/datasets/internal/core/domain"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client wraps the repository metadata API with rate limiting.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a repository metadata client. The credential is an
// opaque bearer token; empty means anonymous access.
func NewClient(ctx context.Context, credential string) *Client {
	var hc *http.Client
	if credential != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: credential})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = DefaultTimeout

	return &Client{
		gh:          gh.NewClient(hc),
		rateLimiter: NewRateLimiter(),
	}
}

// DatasetInfo resolves the revision and returns the flat file listing of
// the repository at that revision. An empty revision resolves to the
// default branch head.
func (c *Client) DatasetInfo(ctx context.Context, repoID, revision string) (*domain.DatasetInfo, error) {
	owner, name, err := splitRepoID(repoID)
	if err != nil {
		return nil, err
	}

	if revision == "" {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
		repo, resp, err := c.gh.Repositories.Get(ctx, owner, name)
		if err != nil {
			return nil, fmt.Errorf("get repository %s: %w", repoID, err)
		}
		c.updateRateLimitFromResponse(resp)
		revision = repo.GetDefaultBranch()
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	tree, resp, err := c.gh.Git.GetTree(ctx, owner, name, revision, true) // recursive=true
	if err != nil {
		return nil, fmt.Errorf("get tree %s@%s: %w", repoID, revision, err)
	}
	c.updateRateLimitFromResponse(resp)

	siblings := make([]string, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		siblings = append(siblings, entry.GetPath())
	}

	return &domain.DatasetInfo{
		ID:       repoID,
		SHA:      tree.GetSHA(),
		Siblings: siblings,
	}, nil
}

// updateRateLimitFromResponse updates the rate limiter from response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// splitRepoID splits an "owner/name" repository identifier.
func splitRepoID(repoID string) (owner, name string, err error) {
	parts := strings.Split(repoID, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: repository id %q must be of the form owner/name",
			domain.ErrInvalidInput, repoID)
	}
	return parts[0], parts[1], nil
}

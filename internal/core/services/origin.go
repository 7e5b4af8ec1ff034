package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/HemansAI/datasets/internal/core/domain"
	"github.com/HemansAI/datasets/internal/core/ports/driven"
	"github.com/HemansAI/datasets/internal/logger"
)

const (
	// DefaultMaxWorkers caps the concurrent metadata requests.
	DefaultMaxWorkers = 64

	// progressThreshold is the file count above which progress is shown.
	progressThreshold = 16
)

// OriginFetcher computes origin metadata for resolved data files:
// modification times for local files, cache validators for remote ones.
type OriginFetcher struct {
	etags      driven.ETagFetcher
	maxWorkers int
}

// NewOriginFetcher creates a fetcher. maxWorkers <= 0 selects the default.
func NewOriginFetcher(etags driven.ETagFetcher, maxWorkers int) *OriginFetcher {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}
	return &OriginFetcher{etags: etags, maxWorkers: maxWorkers}
}

// Fetch returns one origin entry per data file, index-aligned with the
// input regardless of completion order. Requests fan out across a fixed
// worker pool; each worker writes only its own output slot, so no locks
// are needed. Any single failure fails the whole batch.
func (f *OriginFetcher) Fetch(ctx context.Context, files []domain.DataFile, credential string) ([]domain.OriginMetadata, error) {
	origins := make([]domain.OriginMetadata, len(files))
	errs := make([]error, len(files))

	workers := min(f.maxWorkers, len(files))
	if workers < 1 {
		workers = 1
	}
	showProgress := len(files) > progressThreshold

	jobs := make(chan int)
	var done atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				origins[i], errs[i] = f.fetchOne(ctx, files[i], credential)
				if showProgress {
					logger.Progress("Resolving data files", int(done.Add(1)), len(files))
				}
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrOriginFetch, files[i], err)
		}
	}
	return origins, nil
}

// fetchOne computes the origin entry for a single file.
func (f *OriginFetcher) fetchOne(ctx context.Context, file domain.DataFile, credential string) (domain.OriginMetadata, error) {
	if file.IsRemote() {
		etag, err := f.etags.FetchETag(ctx, file.Path, credential)
		if err != nil {
			return nil, err
		}
		return domain.RemoteOrigin(etag), nil
	}

	info, err := os.Stat(file.Path)
	if err != nil {
		return nil, err
	}
	return domain.LocalOrigin(strconv.FormatInt(info.ModTime().UnixNano(), 10)), nil
}

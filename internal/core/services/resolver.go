package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/HemansAI/datasets/internal/core/domain"
	"github.com/HemansAI/datasets/internal/core/ports/driven"
	"github.com/HemansAI/datasets/internal/resolvers/hub"
	"github.com/HemansAI/datasets/internal/resolvers/local"
)

// Resolver turns user pattern mappings into resolved, fingerprinted data
// file collections for a local directory or a repository revision.
type Resolver struct {
	origins *OriginFetcher
}

// NewResolver creates a resolver. The ETag fetcher is used for origin
// metadata of remote URLs; maxWorkers <= 0 selects the default.
func NewResolver(etags driven.ETagFetcher, maxWorkers int) *Resolver {
	return &Resolver{origins: NewOriginFetcher(etags, maxWorkers)}
}

// ListFromLocal resolves patterns against a base directory into a
// DataFilesList. Patterns that are remote URLs are kept as-is; everything
// else is expanded on the filesystem. Origin metadata (mtimes, ETags) is
// fetched for every resolved file.
func (r *Resolver) ListFromLocal(ctx context.Context, patterns []string, basePath string, allowedExtensions []string, credential string) (domain.DataFilesList, error) {
	resolver := local.NewResolver(basePath)

	var files []domain.DataFile
	for _, pattern := range patterns {
		if domain.IsRemoteURL(pattern) {
			files = append(files, domain.NewRemoteURL(pattern))
			continue
		}
		paths, err := resolver.Resolve(pattern, allowedExtensions)
		if err != nil {
			return domain.DataFilesList{}, err
		}
		for _, path := range paths {
			files = append(files, domain.NewLocalFile(path))
		}
	}
	if len(files) == 0 {
		return domain.DataFilesList{}, fmt.Errorf("%w: unable to resolve any data file that matches %v at %s",
			domain.ErrNotFound, patterns, resolver.Location())
	}

	origins, err := r.origins.Fetch(ctx, files, credential)
	if err != nil {
		return domain.DataFilesList{}, err
	}
	return domain.NewDataFilesList(files, origins)
}

// ListFromHub resolves patterns against a repository listing into a
// DataFilesList of download URLs. Every file's origin is the (repository
// id, revision sha) pair; the revision already identifies content, so no
// per-file network calls are needed.
func (r *Resolver) ListFromHub(patterns []string, info *domain.DatasetInfo, allowedExtensions []string) (domain.DataFilesList, error) {
	resolver := hub.NewResolver(info)

	var files []domain.DataFile
	var origins []domain.OriginMetadata
	for _, pattern := range patterns {
		relPaths, err := resolver.Resolve(pattern, allowedExtensions)
		if err != nil {
			return domain.DataFilesList{}, err
		}
		for _, relPath := range relPaths {
			files = append(files, domain.NewRemoteURL(hub.RawURL(info.ID, relPath, info.SHA)))
			origins = append(origins, domain.RepoOrigin(info.ID, info.SHA))
		}
	}
	if len(files) == 0 {
		return domain.DataFilesList{}, fmt.Errorf("%w: unable to resolve any data file that matches %v in dataset repository %s",
			domain.ErrNotFound, patterns, info.ID)
	}

	return domain.NewDataFilesList(files, origins)
}

// DictFromLocal applies ListFromLocal per split of a sanitised pattern
// mapping. Splits that are already resolved pass through untouched.
func (r *Resolver) DictFromLocal(ctx context.Context, patterns domain.PatternsDict, basePath string, allowedExtensions []string, credential string) (domain.DataFilesDict, error) {
	out := make(domain.DataFilesDict, len(patterns))
	for split, value := range patterns {
		if value.Resolved != nil {
			out[split] = *value.Resolved
			continue
		}
		list, err := r.ListFromLocal(ctx, value.Patterns, basePath, allowedExtensions, credential)
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", split, err)
		}
		out[split] = list
	}
	return out, nil
}

// DictFromHub applies ListFromHub per split of a sanitised pattern
// mapping. Splits that are already resolved pass through untouched.
func (r *Resolver) DictFromHub(patterns domain.PatternsDict, info *domain.DatasetInfo, allowedExtensions []string) (domain.DataFilesDict, error) {
	out := make(domain.DataFilesDict, len(patterns))
	for split, value := range patterns {
		if value.Resolved != nil {
			out[split] = *value.Resolved
			continue
		}
		list, err := r.ListFromHub(value.Patterns, info, allowedExtensions)
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", split, err)
		}
		out[split] = list
	}
	return out, nil
}

// GetPatternsLocally infers the split -> patterns mapping from the naming
// conventions found under basePath.
func GetPatternsLocally(basePath string) (map[string][]string, error) {
	patterns, err := InferPatterns(local.NewResolver(basePath))
	if err != nil {
		if errors.Is(err, domain.ErrNoDataFiles) || errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: the directory at %s doesn't contain any data file",
				domain.ErrNoDataFiles, basePath)
		}
		return nil, err
	}
	return patterns, nil
}

// GetPatternsFromHub infers the split -> patterns mapping from the naming
// conventions found in a repository listing.
func GetPatternsFromHub(info *domain.DatasetInfo) (map[string][]string, error) {
	patterns, err := InferPatterns(hub.NewResolver(info))
	if err != nil {
		if errors.Is(err, domain.ErrNoDataFiles) || errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: the dataset repository at %s doesn't contain any data file",
				domain.ErrNoDataFiles, info.ID)
		}
		return nil, err
	}
	return patterns, nil
}

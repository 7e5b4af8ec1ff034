package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HemansAI/datasets/internal/core/domain"
)

// fakeETags serves canned validators keyed by URL and counts calls.
type fakeETags struct {
	etags map[string]string
	calls atomic.Int64
}

func (f *fakeETags) FetchETag(_ context.Context, url, _ string) (string, error) {
	f.calls.Add(1)
	etag, ok := f.etags[url]
	if !ok {
		return "", fmt.Errorf("no validator for %s", url)
	}
	return etag, nil
}

func TestOriginFetcher_Fetch(t *testing.T) {
	t.Run("local file origin is its modification time", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "train.csv")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		info, err := os.Stat(path)
		require.NoError(t, err)

		fetcher := NewOriginFetcher(&fakeETags{}, 0)
		origins, err := fetcher.Fetch(context.Background(), []domain.DataFile{domain.NewLocalFile(path)}, "")

		require.NoError(t, err)
		require.Len(t, origins, 1)
		assert.Equal(t, domain.LocalOrigin(strconv.FormatInt(info.ModTime().UnixNano(), 10)), origins[0])
	})

	t.Run("remote file origin is its validator", func(t *testing.T) {
		etags := &fakeETags{etags: map[string]string{"https://example.com/a.csv": `"v1"`}}

		fetcher := NewOriginFetcher(etags, 0)
		origins, err := fetcher.Fetch(context.Background(), []domain.DataFile{domain.NewRemoteURL("https://example.com/a.csv")}, "")

		require.NoError(t, err)
		assert.Equal(t, []domain.OriginMetadata{domain.RemoteOrigin(`"v1"`)}, origins)
	})

	t.Run("origins stay index-aligned under concurrency", func(t *testing.T) {
		urls := make(map[string]string)
		files := make([]domain.DataFile, 100)
		for i := range files {
			url := fmt.Sprintf("https://example.com/part-%03d.csv", i)
			urls[url] = fmt.Sprintf(`"v%d"`, i)
			files[i] = domain.NewRemoteURL(url)
		}

		fetcher := NewOriginFetcher(&fakeETags{etags: urls}, 8)
		origins, err := fetcher.Fetch(context.Background(), files, "")

		require.NoError(t, err)
		require.Len(t, origins, len(files))
		for i := range files {
			assert.Equal(t, domain.RemoteOrigin(fmt.Sprintf(`"v%d"`, i)), origins[i])
		}
	})

	t.Run("every file is fetched exactly once", func(t *testing.T) {
		etags := &fakeETags{etags: map[string]string{
			"https://example.com/a.csv": `"a"`,
			"https://example.com/b.csv": `"b"`,
		}}

		fetcher := NewOriginFetcher(etags, 4)
		_, err := fetcher.Fetch(context.Background(), []domain.DataFile{
			domain.NewRemoteURL("https://example.com/a.csv"),
			domain.NewRemoteURL("https://example.com/b.csv"),
		}, "")

		require.NoError(t, err)
		assert.Equal(t, int64(2), etags.calls.Load())
	})

	t.Run("one failure fails the batch", func(t *testing.T) {
		etags := &fakeETags{etags: map[string]string{"https://example.com/a.csv": `"a"`}}

		fetcher := NewOriginFetcher(etags, 2)
		_, err := fetcher.Fetch(context.Background(), []domain.DataFile{
			domain.NewRemoteURL("https://example.com/a.csv"),
			domain.NewRemoteURL("https://example.com/missing.csv"),
		}, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrOriginFetch)
		assert.Contains(t, err.Error(), "missing.csv")
	})

	t.Run("missing local file fails the batch", func(t *testing.T) {
		fetcher := NewOriginFetcher(&fakeETags{}, 0)

		_, err := fetcher.Fetch(context.Background(), []domain.DataFile{
			domain.NewLocalFile(filepath.Join(t.TempDir(), "gone.csv")),
		}, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrOriginFetch)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		fetcher := NewOriginFetcher(&fakeETags{}, 0)

		origins, err := fetcher.Fetch(context.Background(), nil, "")

		require.NoError(t, err)
		assert.Empty(t, origins)
	})
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsWildcards(t *testing.T) {
	t.Run("detects star", func(t *testing.T) {
		assert.True(t, ContainsWildcards("*.csv"))
	})

	t.Run("detects character class", func(t *testing.T) {
		assert.True(t, ContainsWildcards("data/train-[0-9].csv"))
	})

	t.Run("literal path has no wildcards", func(t *testing.T) {
		assert.False(t, ContainsWildcards("data/train.csv"))
	})
}

func TestIsRemoteURL(t *testing.T) {
	t.Run("http and https are remote", func(t *testing.T) {
		assert.True(t, IsRemoteURL("https://example.com/data.csv"))
		assert.True(t, IsRemoteURL("http://example.com/data.csv"))
	})

	t.Run("storage schemes are remote", func(t *testing.T) {
		assert.True(t, IsRemoteURL("s3://bucket/data.csv"))
		assert.True(t, IsRemoteURL("ftp://host/data.csv"))
	})

	t.Run("paths are not remote", func(t *testing.T) {
		assert.False(t, IsRemoteURL("/abs/data.csv"))
		assert.False(t, IsRemoteURL("data/train.csv"))
	})
}

func TestIsRelativePath(t *testing.T) {
	assert.True(t, IsRelativePath("data/*.csv"))
	assert.False(t, IsRelativePath("/abs/data/*.csv"))
	assert.False(t, IsRelativePath("https://example.com/data.csv"))
}

func TestIsIgnorableName(t *testing.T) {
	t.Run("sidecar files are ignored", func(t *testing.T) {
		assert.True(t, IsIgnorableName("README.md"))
		assert.True(t, IsIgnorableName("config.json"))
		assert.True(t, IsIgnorableName("dataset_infos.json"))
	})

	t.Run("dotfiles are ignored", func(t *testing.T) {
		assert.True(t, IsIgnorableName(".gitignore"))
	})

	t.Run("data files are not ignored", func(t *testing.T) {
		assert.False(t, IsIgnorableName("train.csv"))
	})
}

func TestHasAllowedExtension(t *testing.T) {
	allowed := []string{"csv", "json"}

	t.Run("final suffix matches", func(t *testing.T) {
		assert.True(t, HasAllowedExtension("train.csv", allowed))
		assert.True(t, HasAllowedExtension("b.json", allowed))
	})

	t.Run("inner suffix of compressed file matches", func(t *testing.T) {
		assert.True(t, HasAllowedExtension("train.csv.gz", allowed))
	})

	t.Run("disallowed extension fails", func(t *testing.T) {
		assert.False(t, HasAllowedExtension("c.txt", allowed))
	})

	t.Run("no extension fails", func(t *testing.T) {
		assert.False(t, HasAllowedExtension("Makefile", allowed))
	})
}

func TestSanitizePatterns(t *testing.T) {
	t.Run("bare string goes to the default split", func(t *testing.T) {
		out, err := SanitizePatterns("*.csv")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, []string{"*.csv"}, out[DefaultSplit].Patterns)
	})

	t.Run("list goes to the default split", func(t *testing.T) {
		out, err := SanitizePatterns([]string{"a.csv", "b.csv"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.csv", "b.csv"}, out[DefaultSplit].Patterns)
	})

	t.Run("scalar mapping values are wrapped", func(t *testing.T) {
		out, err := SanitizePatterns(map[string]string{
			"train": "tr.csv",
			"test":  "te.csv",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"tr.csv"}, out["train"].Patterns)
		assert.Equal(t, []string{"te.csv"}, out["test"].Patterns)
	})

	t.Run("list mapping values pass through", func(t *testing.T) {
		out, err := SanitizePatterns(map[string][]string{
			"train": {"a", "b"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, out["train"].Patterns)
	})

	t.Run("mixed mapping keeps resolved lists", func(t *testing.T) {
		resolved := &DataFilesList{}
		out, err := SanitizePatterns(map[string]any{
			"train": "tr.csv",
			"test":  resolved,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"tr.csv"}, out["train"].Patterns)
		assert.Same(t, resolved, out["test"].Resolved)
	})

	t.Run("unsupported shape errors", func(t *testing.T) {
		_, err := SanitizePatterns(42)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

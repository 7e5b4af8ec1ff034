package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataFilesList(t *testing.T) {
	t.Run("pairs files with origins", func(t *testing.T) {
		files := []DataFile{NewLocalFile("/data/a.csv")}
		origins := []OriginMetadata{LocalOrigin("123")}

		list, err := NewDataFilesList(files, origins)

		require.NoError(t, err)
		assert.Equal(t, 1, list.Len())
	})

	t.Run("rejects misaligned slices", func(t *testing.T) {
		files := []DataFile{NewLocalFile("/data/a.csv")}

		_, err := NewDataFilesList(files, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDataFile_Equality(t *testing.T) {
	t.Run("same kind and value are equal", func(t *testing.T) {
		assert.Equal(t, NewLocalFile("/a"), NewLocalFile("/a"))
	})

	t.Run("kind distinguishes path from URL", func(t *testing.T) {
		assert.NotEqual(t, NewLocalFile("x"), NewRemoteURL("x"))
	})
}

func TestDataFilesList_Hash(t *testing.T) {
	list := func(origin string) DataFilesList {
		return DataFilesList{
			Files:   []DataFile{NewLocalFile("/data/a.csv"), NewLocalFile("/data/b.csv")},
			Origins: []OriginMetadata{LocalOrigin(origin), LocalOrigin("2")},
		}
	}

	t.Run("stable across calls", func(t *testing.T) {
		assert.Equal(t, list("1").Hash(), list("1").Hash())
	})

	t.Run("changes when one origin changes", func(t *testing.T) {
		assert.NotEqual(t, list("1").Hash(), list("9").Hash())
	})

	t.Run("changes when a file changes", func(t *testing.T) {
		other := list("1")
		other.Files[1] = NewLocalFile("/data/c.csv")
		assert.NotEqual(t, list("1").Hash(), other.Hash())
	})

	t.Run("independent of pair order", func(t *testing.T) {
		forward := list("1")
		backward := DataFilesList{
			Files:   []DataFile{forward.Files[1], forward.Files[0]},
			Origins: []OriginMetadata{forward.Origins[1], forward.Origins[0]},
		}
		assert.Equal(t, forward.Hash(), backward.Hash())
	})

	t.Run("kind is part of the hash", func(t *testing.T) {
		asLocal := DataFilesList{
			Files:   []DataFile{NewLocalFile("x")},
			Origins: []OriginMetadata{LocalOrigin("1")},
		}
		asRemote := DataFilesList{
			Files:   []DataFile{NewRemoteURL("x")},
			Origins: []OriginMetadata{LocalOrigin("1")},
		}
		assert.NotEqual(t, asLocal.Hash(), asRemote.Hash())
	})
}

func TestDataFilesDict_Hash(t *testing.T) {
	trainList := DataFilesList{
		Files:   []DataFile{NewLocalFile("/data/train.csv")},
		Origins: []OriginMetadata{LocalOrigin("1")},
	}
	testList := DataFilesList{
		Files:   []DataFile{NewLocalFile("/data/test.csv")},
		Origins: []OriginMetadata{LocalOrigin("2")},
	}

	t.Run("independent of key insertion order", func(t *testing.T) {
		first := DataFilesDict{}
		first["train"] = trainList
		first["test"] = testList

		second := DataFilesDict{}
		second["test"] = testList
		second["train"] = trainList

		assert.Equal(t, first.Hash(), second.Hash())
	})

	t.Run("split name is part of the hash", func(t *testing.T) {
		first := DataFilesDict{"train": trainList}
		second := DataFilesDict{"validation": trainList}
		assert.NotEqual(t, first.Hash(), second.Hash())
	})

	t.Run("changes when a split's content changes", func(t *testing.T) {
		first := DataFilesDict{"train": trainList}
		second := DataFilesDict{"train": testList}
		assert.NotEqual(t, first.Hash(), second.Hash())
	})
}

func TestDataFilesDict_NumFiles(t *testing.T) {
	dict := DataFilesDict{
		"train": {Files: []DataFile{NewLocalFile("/a"), NewLocalFile("/b")}, Origins: []OriginMetadata{{"1"}, {"2"}}},
		"test":  {Files: []DataFile{NewLocalFile("/c")}, Origins: []OriginMetadata{{"3"}}},
	}
	assert.Equal(t, 3, dict.NumFiles())
}

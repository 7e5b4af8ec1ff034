package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DataFilesList is an ordered list of resolved data files paired with
// their origin metadata. Files are sorted at resolution time so that
// resolving the same patterns against an unchanged file set always
// produces the same list.
//
// Hashing the list gives a different value if and only if at least one
// file changed, which makes it usable as a cache key for datasets built
// from these files.
type DataFilesList struct {
	Files   []DataFile
	Origins []OriginMetadata
}

// NewDataFilesList pairs files with their origin metadata.
// Both slices must be index-aligned.
func NewDataFilesList(files []DataFile, origins []OriginMetadata) (DataFilesList, error) {
	if len(files) != len(origins) {
		return DataFilesList{}, fmt.Errorf("%w: %d data files paired with %d origin entries",
			ErrInvalidInput, len(files), len(origins))
	}
	return DataFilesList{Files: files, Origins: origins}, nil
}

// Len returns the number of resolved data files.
func (l DataFilesList) Len() int {
	return len(l.Files)
}

// Hash returns a hex digest of the (file, origin) pairs. Pairs are
// canonicalised by sorting, so the hash depends only on the content of
// the list, not on construction order.
func (l DataFilesList) Hash() string {
	pairs := make([]string, len(l.Files))
	for i, f := range l.Files {
		var b strings.Builder
		b.WriteString(strconv.Itoa(int(f.Kind)))
		b.WriteByte(0)
		b.WriteString(f.Path)
		if i < len(l.Origins) {
			for _, part := range l.Origins[i] {
				b.WriteByte(0)
				b.WriteString(part)
			}
		}
		pairs[i] = b.String()
	}
	sort.Strings(pairs)

	h := sha256.New()
	for _, pair := range pairs {
		h.Write([]byte(pair))
		h.Write([]byte{0x1e})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// DataFilesDict maps a split name to its resolved data files.
// Its hash is independent of key insertion order.
type DataFilesDict map[string]DataFilesList

// NumFiles returns the total number of data files across splits.
func (d DataFilesDict) NumFiles() int {
	n := 0
	for _, list := range d {
		n += list.Len()
	}
	return n
}

// Hash returns a hex digest over the splits, with keys sorted before
// hashing so that two dicts with the same content always hash equal.
func (d DataFilesDict) Hash() string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, key := range keys {
		h.Write([]byte(key))
		h.Write([]byte{0})
		h.Write([]byte(d[key].Hash()))
		h.Write([]byte{0x1e})
	}
	return hex.EncodeToString(h.Sum(nil))
}

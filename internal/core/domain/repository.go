package domain

import "time"

// DatasetInfo describes one revision of a hosted dataset repository:
// its identifier, the resolved revision sha, and the flat list of file
// paths present at that revision.
type DatasetInfo struct {
	// ID is the repository identifier, e.g. "owner/name".
	ID string

	// SHA is the resolved revision identifier.
	SHA string

	// Siblings are the repository-relative paths of all files at SHA.
	Siblings []string
}

// Resolution is one recorded resolution run, used to detect whether a
// resolved file set changed between process runs.
type Resolution struct {
	// ID is the unique identifier of the record.
	ID string

	// Key names what was resolved, e.g. "local:/data/squad" or
	// "hub:owner/name".
	Key string

	// Hash is the content hash of the resolved DataFilesDict.
	Hash string

	// FileCount is the total number of resolved files.
	FileCount int

	// CreatedAt is when the resolution was recorded.
	CreatedAt time.Time
}

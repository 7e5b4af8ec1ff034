package domain

// OriginMetadata is a small tuple identifying the version of a data file
// without reading its content:
//   - local file: stringified modification time
//   - remote file: HTTP cache validator (ETag)
//   - repository file: repository id and revision sha
//
// It exists so that a list of data files can be hashed, and the hash
// changes if and only if at least one file changed.
type OriginMetadata []string

// LocalOrigin wraps a stringified modification time.
func LocalOrigin(mtime string) OriginMetadata {
	return OriginMetadata{mtime}
}

// RemoteOrigin wraps an HTTP cache validator.
func RemoteOrigin(etag string) OriginMetadata {
	return OriginMetadata{etag}
}

// RepoOrigin wraps a repository id and revision sha. The revision already
// uniquely identifies the content of every file in the snapshot.
func RepoOrigin(repoID, sha string) OriginMetadata {
	return OriginMetadata{repoID, sha}
}

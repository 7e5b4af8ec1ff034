package domain

// DataFileKind discriminates local files from remote URLs so that
// downstream consumers never treat a URL as a filesystem path or the
// other way around.
type DataFileKind int

const (
	// LocalFile is an absolute, filesystem-resolved path.
	LocalFile DataFileKind = iota

	// RemoteURL is an absolute, versioned download URL.
	RemoteURL
)

// DataFile is one resolved data file location.
// Two DataFiles are equal iff their kind and value are equal.
type DataFile struct {
	Kind DataFileKind
	Path string
}

// NewLocalFile returns a DataFile for an absolute local path.
func NewLocalFile(path string) DataFile {
	return DataFile{Kind: LocalFile, Path: path}
}

// NewRemoteURL returns a DataFile for an absolute URL.
func NewRemoteURL(url string) DataFile {
	return DataFile{Kind: RemoteURL, Path: url}
}

// IsRemote reports whether the data file is a remote URL.
func (f DataFile) IsRemote() bool {
	return f.Kind == RemoteURL
}

func (f DataFile) String() string {
	return f.Path
}

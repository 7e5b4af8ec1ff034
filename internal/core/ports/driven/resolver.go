package driven

// PatternResolver expands one pattern into the files matching it on a
// concrete backend. Implementations return results sorted and report a
// domain.ErrNotFound when an exact (wildcard-free) pattern matches
// nothing; a wildcard pattern matching nothing is an empty, error-free
// result.
type PatternResolver interface {
	// Resolve returns the sorted matches for the pattern, filtered by the
	// extension allow-list when it is non-nil.
	Resolve(pattern string, allowedExtensions []string) ([]string, error)

	// Location names the searched base directory or repository, for error
	// messages.
	Location() string
}

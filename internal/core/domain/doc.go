// Package domain defines the core entities of data file resolution.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DataFile: A resolved file location (local path or remote URL)
//   - OriginMetadata: The version fingerprint of one data file
//   - DataFilesList / DataFilesDict: The resolved, hashable aggregates
//   - PatternsDict: The sanitised split -> patterns mapping
//   - DatasetInfo: One revision of a hosted dataset repository
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

package domain

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultSplit is the split that bare patterns are assigned to.
const DefaultSplit = "train"

// WildcardCharacters are the glob metacharacters used to decide whether a
// pattern is a literal path or an expandable expression.
const WildcardCharacters = "*[]"

// FilesToIgnore are sidecar filenames never treated as data files,
// regardless of what pattern matched them.
var FilesToIgnore = []string{
	"README.md",
	"config.json",
	"dataset_infos.json",
	"dummy_data.zip",
	"dataset_dict.json",
}

var remoteURLSchemes = []string{"http://", "https://", "ftp://", "s3://", "gs://", "hdfs://"}

// ContainsWildcards reports whether the pattern holds any glob metacharacter.
func ContainsWildcards(pattern string) bool {
	return strings.ContainsAny(pattern, WildcardCharacters)
}

// IsRemoteURL reports whether the pattern is a remote URL rather than a
// path or glob expression.
func IsRemoteURL(pattern string) bool {
	lower := strings.ToLower(pattern)
	for _, scheme := range remoteURLSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// IsRelativePath reports whether the pattern should be expanded relative
// to a base directory instead of the filesystem root.
func IsRelativePath(pattern string) bool {
	return !IsRemoteURL(pattern) && !filepath.IsAbs(pattern)
}

// IsIgnorableName reports whether a file name is a dotfile or on the
// fixed ignore-list.
func IsIgnorableName(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(FilesToIgnore, name)
}

// HasAllowedExtension reports whether any dot-suffix of the file name,
// with the leading dot stripped, is on the allow-list. Matching any
// suffix (not only the last) keeps compressed data files such as
// "train.csv.gz" resolvable with allowed extension "csv".
func HasAllowedExtension(name string, allowed []string) bool {
	parts := strings.Split(name, ".")
	for _, suffix := range parts[1:] {
		if slices.Contains(allowed, suffix) {
			return true
		}
	}
	return false
}

// PatternsOrResolved holds, for one split, either the raw patterns still
// to resolve or an already resolved list that must pass through untouched.
type PatternsOrResolved struct {
	Patterns []string
	Resolved *DataFilesList
}

// PatternsDict maps a split name to its patterns (or resolved files).
type PatternsDict map[string]PatternsOrResolved

// SanitizePatterns takes the data files patterns from the user and
// formats them into a dictionary of split name -> list of patterns.
// A bare pattern or list of patterns is assigned to the default split.
// Scalar mapping values are wrapped into single-element lists.
func SanitizePatterns(patterns any) (PatternsDict, error) {
	switch p := patterns.(type) {
	case string:
		return PatternsDict{DefaultSplit: {Patterns: []string{p}}}, nil
	case []string:
		return PatternsDict{DefaultSplit: {Patterns: p}}, nil
	case map[string]string:
		out := make(PatternsDict, len(p))
		for split, pattern := range p {
			out[split] = PatternsOrResolved{Patterns: []string{pattern}}
		}
		return out, nil
	case map[string][]string:
		out := make(PatternsDict, len(p))
		for split, list := range p {
			out[split] = PatternsOrResolved{Patterns: list}
		}
		return out, nil
	case PatternsDict:
		out := make(PatternsDict, len(p))
		for split, value := range p {
			out[split] = value
		}
		return out, nil
	case map[string]any:
		out := make(PatternsDict, len(p))
		for split, value := range p {
			switch v := value.(type) {
			case string:
				out[split] = PatternsOrResolved{Patterns: []string{v}}
			case []string:
				out[split] = PatternsOrResolved{Patterns: v}
			case *DataFilesList:
				out[split] = PatternsOrResolved{Resolved: v}
			case DataFilesList:
				out[split] = PatternsOrResolved{Resolved: &v}
			default:
				return nil, fmt.Errorf("%w: unsupported patterns value %T for split %q", ErrInvalidInput, value, split)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported data files patterns type %T", ErrInvalidInput, patterns)
	}
}

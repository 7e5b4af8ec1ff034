// Package services implements the resolution engine on top of the
// driven ports: split inference over a backend-agnostic pattern
// resolver, concurrent origin metadata fetching, and the constructors
// that turn pattern mappings into resolved data file collections.
package services

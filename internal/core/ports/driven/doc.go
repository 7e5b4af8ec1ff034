// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and the resolver and adapter
// packages implement them:
//
//   - PatternResolver: Expands one pattern against a backend (filesystem
//     or repository listing). Split inference runs against this interface
//     so the strategy ordering exists only once.
//   - HubAPI: Fetches the file listing of a repository at a revision.
//   - ETagFetcher: Fetches the HTTP cache validator for a URL.
//   - ResolutionStore: Persists resolution records for change detection.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any resolver or adapter package
package driven

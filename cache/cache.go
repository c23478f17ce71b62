// Package cache provides completion caching implementations.
package cache

// CompletionCache is the interface for completion caching.
type CompletionCache interface {
	// Get retrieves a cached completion. Returns empty string and false if
	// not found or expired.
	Get(key string) (string, bool)

	// Set stores a completion in the cache.
	Set(key string, value string) error
}

// Package store defines the persistence interfaces and the shared error
// taxonomy used by all store implementations. Concrete backends live in
// internal/platform.
package store

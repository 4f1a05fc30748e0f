// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store and service
// interfaces used throughout the application, facilitating consistent and
// DRY testing across the codebase. Instead of defining inline mocks in
// individual test files, these standardized mock implementations can be
// reused.
//
// Each mock has per-method function fields for customizable behavior and a
// map-backed default implementation that behaves like a tiny in-memory
// document store, including ownership matching.
package mocks

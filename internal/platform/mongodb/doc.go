// Package mongodb contains the MongoDB implementations of the store
// interfaces, plus connection and index management helpers. All operations
// are single-document and rely on MongoDB's per-document atomicity; no
// multi-document transactions are used.
package mongodb

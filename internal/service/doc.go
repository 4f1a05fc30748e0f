// Package service implements the application's business operations on top
// of the store interfaces: idempotent first-login user registration and the
// task CRUD semantics, including ownership enforcement and patch merging.
package service

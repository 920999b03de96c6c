// Package article provides use cases for managing article entities.
// It validates writes, confirms existence before mutations and maps store
// results onto the sentinel errors the HTTP layer understands.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// Get, Update and Delete return it when the ID does not exist in the repository.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")
)

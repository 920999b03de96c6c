// Package entity defines the core domain entities and validation errors for the application.
// Article is the only entity; it has no relations, versions or soft-delete state.
package entity

// Article represents a user-authored article.
// ID is assigned by the store on creation and never changes afterwards.
type Article struct {
	ID    int64
	Title string
	Body  string
}

// Package model defines core data structures and types for the blog API.
package model

// Post is the domain entity served by the API. The ID is assigned by the
// store on creation and is never changed by callers afterwards.
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Sortable post fields accepted by the list operation.
const (
	SortByTitle   = "title"
	SortByContent = "content"
)

// Sort directions accepted by the list operation.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

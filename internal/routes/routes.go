// Package routes defines HTTP route constants for the application.
package routes

const (
	// Posts API
	APIPosts       = "/api/posts"
	APIPostByID    = "/api/posts/{id}"
	APIPostsSearch = "/api/posts/search"

	// Documentation
	APIDocs        = "/api/docs"
	APIDocsOpenAPI = "/api/docs/openapi.json"
)

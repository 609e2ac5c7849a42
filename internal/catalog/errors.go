package catalog

import "errors"

var (
	// ErrViewNotFound is returned by [Catalog.Resolve] for an unknown route.
	ErrViewNotFound = errors.New("view not found")

	// ErrResourceNotFound is returned by [Catalog.Resource] for an unknown name.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidDeclaration is returned by [New] when a resource or view
	// declaration is malformed or duplicated.
	ErrInvalidDeclaration = errors.New("invalid catalog declaration")
)

package repository

import (
	"context"

	"movieapi/internal/model"
)

// MovieFilter narrows a movie query. The zero value matches every record.
// Year is an exact match on releaseYear, Title a case-insensitive match on title.
// When both are set they are combined with AND.
type MovieFilter struct {
	Year  string
	Title string
}

// MovieRepository defines read-only data access for movies.
// No business logic here, strictly persistence operations.
type MovieRepository interface {
	// Find returns every record matching the filter, in store order.
	// All result pages are drained; a failure on any page fails the call.
	// The returned slice is non-nil when err is nil.
	Find(ctx context.Context, f MovieFilter) ([]model.Movie, error)

	// Ping verifies that the backing collection is reachable.
	Ping(ctx context.Context) error
}

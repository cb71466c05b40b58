package cosmos

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"movieapi/internal/model"
	"movieapi/internal/repository"
)

const selectMovies = `SELECT c.title, c.releaseYear, c.genre, c.coverUrl FROM c`

// containerAPI is the subset of *azcosmos.ContainerClient used by the repository.
type containerAPI interface {
	NewQueryItemsPager(query string, partitionKey azcosmos.PartitionKey, o *azcosmos.QueryOptions) *runtime.Pager[azcosmos.QueryItemsResponse]
	Read(ctx context.Context, o *azcosmos.ReadContainerOptions) (azcosmos.ContainerResponse, error)
}

// MovieCosmos is a Cosmos DB (NoSQL API) implementation of repository.MovieRepository.
// Queries are parameterized and span all partitions.
type MovieCosmos struct {
	container containerAPI
}

// NewMovieCosmos creates a repository on top of a long-lived container client.
func NewMovieCosmos(container *azcosmos.ContainerClient) *MovieCosmos {
	return &MovieCosmos{container: container}
}

var _ repository.MovieRepository = (*MovieCosmos)(nil)

// BuildQuery renders the query text and its bound parameters for a filter.
// Filter values are never spliced into the query text.
func BuildQuery(f repository.MovieFilter) (string, []azcosmos.QueryParameter) {
	var (
		where  []string
		params []azcosmos.QueryParameter
	)
	if f.Year != "" {
		where = append(where, "c.releaseYear = @year")
		params = append(params, azcosmos.QueryParameter{Name: "@year", Value: f.Year})
	}
	if f.Title != "" {
		where = append(where, "LOWER(c.title) = @title")
		params = append(params, azcosmos.QueryParameter{Name: "@title", Value: strings.ToLower(f.Title)})
	}
	if len(where) == 0 {
		return selectMovies, nil
	}
	return selectMovies + " WHERE " + strings.Join(where, " AND "), params
}

// Find runs the filter query across partitions and drains every page.
func (r *MovieCosmos) Find(ctx context.Context, f repository.MovieFilter) ([]model.Movie, error) {
	query, params := BuildQuery(f)

	// An empty partition key fans the query out across partitions.
	pager := r.container.NewQueryItemsPager(query, azcosmos.NewPartitionKey(), &azcosmos.QueryOptions{
		QueryParameters: params,
	})

	movies := make([]model.Movie, 0)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query movies: %w", err)
		}
		for _, raw := range page.Items {
			var m model.Movie
			if err := json.Unmarshal(raw, &m); err != nil {
				return nil, fmt.Errorf("decode movie: %w", err)
			}
			movies = append(movies, m)
		}
	}
	return movies, nil
}

// Ping reads the container properties.
func (r *MovieCosmos) Ping(ctx context.Context) error {
	if _, err := r.container.Read(ctx, nil); err != nil {
		return fmt.Errorf("read container: %w", err)
	}
	return nil
}

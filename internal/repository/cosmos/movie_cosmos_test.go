package cosmos

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieapi/internal/model"
	"movieapi/internal/repository"
)

type fakeContainer struct {
	pages   [][][]byte
	failAt  int
	readErr error

	gotQuery string
	gotOpts  *azcosmos.QueryOptions
}

func (f *fakeContainer) NewQueryItemsPager(query string, _ azcosmos.PartitionKey, o *azcosmos.QueryOptions) *runtime.Pager[azcosmos.QueryItemsResponse] {
	f.gotQuery = query
	f.gotOpts = o
	i := 0
	return runtime.NewPager(runtime.PagingHandler[azcosmos.QueryItemsResponse]{
		More: func(azcosmos.QueryItemsResponse) bool {
			return i < len(f.pages)
		},
		Fetcher: func(context.Context, *azcosmos.QueryItemsResponse) (azcosmos.QueryItemsResponse, error) {
			if f.failAt >= 0 && i == f.failAt {
				return azcosmos.QueryItemsResponse{}, errors.New("connection reset")
			}
			if i >= len(f.pages) {
				return azcosmos.QueryItemsResponse{}, nil
			}
			page := azcosmos.QueryItemsResponse{Items: f.pages[i]}
			i++
			return page, nil
		},
	})
}

func (f *fakeContainer) Read(context.Context, *azcosmos.ReadContainerOptions) (azcosmos.ContainerResponse, error) {
	return azcosmos.ContainerResponse{}, f.readErr
}

func item(s string) []byte { return []byte(s) }

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     repository.MovieFilter
		wantQuery  string
		wantParams []azcosmos.QueryParameter
	}{
		{
			name:      "all movies",
			wantQuery: "SELECT c.title, c.releaseYear, c.genre, c.coverUrl FROM c",
		},
		{
			name:       "by year",
			filter:     repository.MovieFilter{Year: "1999"},
			wantQuery:  "SELECT c.title, c.releaseYear, c.genre, c.coverUrl FROM c WHERE c.releaseYear = @year",
			wantParams: []azcosmos.QueryParameter{{Name: "@year", Value: "1999"}},
		},
		{
			name:       "by title lowers the bound value",
			filter:     repository.MovieFilter{Title: "The Matrix"},
			wantQuery:  "SELECT c.title, c.releaseYear, c.genre, c.coverUrl FROM c WHERE LOWER(c.title) = @title",
			wantParams: []azcosmos.QueryParameter{{Name: "@title", Value: "the matrix"}},
		},
		{
			name:      "year and title",
			filter:    repository.MovieFilter{Year: "1999", Title: "Matrix"},
			wantQuery: "SELECT c.title, c.releaseYear, c.genre, c.coverUrl FROM c WHERE c.releaseYear = @year AND LOWER(c.title) = @title",
			wantParams: []azcosmos.QueryParameter{
				{Name: "@year", Value: "1999"},
				{Name: "@title", Value: "matrix"},
			},
		},
		{
			name:       "quotes stay in the parameter",
			filter:     repository.MovieFilter{Year: "1999' OR 1=1 --"},
			wantQuery:  "SELECT c.title, c.releaseYear, c.genre, c.coverUrl FROM c WHERE c.releaseYear = @year",
			wantParams: []azcosmos.QueryParameter{{Name: "@year", Value: "1999' OR 1=1 --"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, params := BuildQuery(tt.filter)
			assert.Equal(t, tt.wantQuery, q)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}

func TestMovieCosmos_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("drains all pages in order", func(t *testing.T) {
		fc := &fakeContainer{
			failAt: -1,
			pages: [][][]byte{
				{item(`{"title":"The Matrix","releaseYear":"1999","genre":"Sci-Fi","coverUrl":"https://img/matrix.jpg"}`)},
				{item(`{"title":"Shrek","releaseYear":"2001","genre":"Animation","coverUrl":"https://img/shrek.jpg"}`)},
			},
		}
		repo := &MovieCosmos{container: fc}

		movies, err := repo.Find(ctx, repository.MovieFilter{})
		require.NoError(t, err)
		assert.Equal(t, []model.Movie{
			{Title: "The Matrix", ReleaseYear: "1999", Genre: "Sci-Fi", CoverURL: "https://img/matrix.jpg"},
			{Title: "Shrek", ReleaseYear: "2001", Genre: "Animation", CoverURL: "https://img/shrek.jpg"},
		}, movies)
		assert.Empty(t, fc.gotOpts.QueryParameters)
	})

	t.Run("passes filter parameters", func(t *testing.T) {
		fc := &fakeContainer{failAt: -1}
		repo := &MovieCosmos{container: fc}

		movies, err := repo.Find(ctx, repository.MovieFilter{Year: "1999"})
		require.NoError(t, err)
		assert.NotNil(t, movies)
		assert.Empty(t, movies)
		assert.Contains(t, fc.gotQuery, "c.releaseYear = @year")
		assert.Equal(t, []azcosmos.QueryParameter{{Name: "@year", Value: "1999"}}, fc.gotOpts.QueryParameters)
	})

	t.Run("page error fails the whole call", func(t *testing.T) {
		fc := &fakeContainer{
			failAt: 1,
			pages: [][][]byte{
				{item(`{"title":"The Matrix","releaseYear":"1999"}`)},
				{item(`{"title":"Shrek","releaseYear":"2001"}`)},
			},
		}
		repo := &MovieCosmos{container: fc}

		movies, err := repo.Find(ctx, repository.MovieFilter{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "query movies: connection reset")
		assert.Nil(t, movies)
	})

	t.Run("malformed item", func(t *testing.T) {
		fc := &fakeContainer{failAt: -1, pages: [][][]byte{{item(`{"title":`)}}}
		repo := &MovieCosmos{container: fc}

		_, err := repo.Find(ctx, repository.MovieFilter{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decode movie")
	})
}

func TestMovieCosmos_Ping(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, (&MovieCosmos{container: &fakeContainer{}}).Ping(ctx))

	err := (&MovieCosmos{container: &fakeContainer{readErr: errors.New("unauthorized")}}).Ping(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read container: unauthorized")
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"movieapi/docs"
)

func TestConfigureSwagger(t *testing.T) {
	orig := docs.SwaggerInfo.SwaggerTemplate
	defer func() { docs.SwaggerInfo.SwaggerTemplate = orig }()

	t.Run("no prefix", func(t *testing.T) {
		configureSwagger("")
		doc := docs.SwaggerInfo.ReadDoc()
		assert.Contains(t, doc, `"/getMovies"`)
		assert.Contains(t, doc, `"/health"`)
	})

	t.Run("prefixed movie routes", func(t *testing.T) {
		docs.SwaggerInfo.SwaggerTemplate = orig
		configureSwagger("api/")
		doc := docs.SwaggerInfo.ReadDoc()
		assert.Contains(t, doc, `"/api/getMovies"`)
		assert.Contains(t, doc, `"/api/getMoviesByYear/{year}"`)
		assert.Contains(t, doc, `"/api/getMovieSummary/{title}"`)
		assert.Contains(t, doc, `"/health"`)
		assert.NotContains(t, doc, `"/api/health"`)
		assert.Equal(t, "/", docs.SwaggerInfo.BasePath)
	})
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"movieapi/internal/service"
)

// Options tunes route registration.
type Options struct {
	// RoutePrefix is prepended to the movie routes (e.g. "/api").
	RoutePrefix string
	// NotFoundStrict answers 404 on every empty movie result.
	NotFoundStrict bool
	// Gatherer backs GET /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, store Pinger, movieSvc service.MovieService, opts Options) {
	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())
	if opts.Gatherer != nil {
		app.Get("/metrics", Metrics(opts.Gatherer))
	}

	var r fiber.Router = app
	if opts.RoutePrefix != "" {
		r = app.Group(opts.RoutePrefix)
	}
	r.Get("/getMovies", GetMovies(movieSvc))
	r.Get("/getMoviesByYear/:year", GetMoviesByYear(movieSvc, opts.NotFoundStrict))
	r.Get("/getMovieSummary/:title", GetMovieSummary(movieSvc, opts.NotFoundStrict))
}

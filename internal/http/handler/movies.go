package handler

import (
	"encoding/json"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"movieapi/internal/model"
	"movieapi/internal/service"
)

const (
	msgNoMovies        = "No movies found"
	msgNoMoviesForYear = "No movies found for the specified year"
	msgNoMoviesByTitle = "No movies found under specified title"
)

// writeMovies answers with an indented JSON array.
func writeMovies(c *fiber.Ctx, movies []model.Movie) error {
	body, err := json.MarshalIndent(movies, "", "    ")
	if err != nil {
		return writeInternal(c, "encode movies", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

// writeNotFound answers with a plain text message. The year and title routes
// historically answer 200 here; strict mode switches them to 404.
func writeNotFound(c *fiber.Ctx, msg string, strict bool) error {
	status := fiber.StatusOK
	if strict {
		status = fiber.StatusNotFound
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(msg)
}

// GetMovies lists every movie.
//
//	@Summary	List all movies
//	@Tags		movies
//	@Produce	json
//	@Success	200	{array}		model.Movie
//	@Failure	404	{string}	string	"No movies found"
//	@Router		/getMovies [get]
func GetMovies(svc service.MovieService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		movies, err := svc.List(c.UserContext())
		if err != nil {
			return writeInternal(c, "list movies", err)
		}
		if len(movies) == 0 {
			return writeNotFound(c, msgNoMovies, true)
		}
		return writeMovies(c, movies)
	}
}

// GetMoviesByYear lists movies released in the given year.
//
//	@Summary	List movies by release year
//	@Tags		movies
//	@Produce	json
//	@Param		year	path		string	true	"Release year"
//	@Success	200		{array}		model.Movie
//	@Failure	400		{object}	errorPayload
//	@Router		/getMoviesByYear/{year} [get]
func GetMoviesByYear(svc service.MovieService, strict bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := url.PathUnescape(c.Params("year"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_YEAR", "invalid year parameter")
		}

		movies, err := svc.ListByYear(c.UserContext(), year)
		if err != nil {
			if errors.Is(err, service.ErrYearRequired) || errors.Is(err, service.ErrYearTooLong) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_YEAR", "invalid year parameter")
			}
			return writeInternal(c, "list movies by year", err)
		}
		if len(movies) == 0 {
			return writeNotFound(c, msgNoMoviesForYear, strict)
		}
		return writeMovies(c, movies)
	}
}

// GetMovieSummary returns the movies matching a title, each with a generated summary.
//
//	@Summary	Get a movie with an AI generated summary
//	@Tags		movies
//	@Produce	json
//	@Param		title	path		string	true	"Movie title (case-insensitive)"
//	@Success	200		{array}		model.Movie
//	@Failure	400		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/getMovieSummary/{title} [get]
func GetMovieSummary(svc service.MovieService, strict bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title, err := url.PathUnescape(c.Params("title"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TITLE", "invalid title parameter")
		}

		movies, err := svc.GetWithSummary(c.UserContext(), title)
		if err != nil {
			if errors.Is(err, service.ErrTitleRequired) || errors.Is(err, service.ErrTitleTooLong) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_TITLE", "invalid title parameter")
			}
			return writeInternal(c, "get movie summary", err)
		}
		if len(movies) == 0 {
			return writeNotFound(c, msgNoMoviesByTitle, strict)
		}
		return writeMovies(c, movies)
	}
}

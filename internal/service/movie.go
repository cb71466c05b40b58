package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"movieapi/internal/model"
	"movieapi/internal/repository"
	"movieapi/internal/summary"
)

// Length limits on path parameters.
const (
	MaxYearLength  = 4
	MaxTitleLength = 256
)

var (
	ErrYearRequired  = errors.New("year is required")
	ErrYearTooLong   = errors.New("year is too long")
	ErrTitleRequired = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title is too long")
)

// MovieService defines the read-only movie use cases.
type MovieService interface {
	// List returns every movie in the collection.
	List(ctx context.Context) ([]model.Movie, error)

	// ListByYear returns movies whose releaseYear equals year.
	ListByYear(ctx context.Context, year string) ([]model.Movie, error)

	// GetWithSummary returns movies whose title matches case-insensitively,
	// each annotated with a freshly generated summary.
	GetWithSummary(ctx context.Context, title string) ([]model.Movie, error)
}

// movieService is a concrete implementation of MovieService.
type movieService struct {
	repo      repository.MovieRepository
	generator summary.Generator
}

// NewMovieService constructs a new MovieService.
func NewMovieService(repo repository.MovieRepository, generator summary.Generator) MovieService {
	return &movieService{repo: repo, generator: generator}
}

func (s *movieService) List(ctx context.Context) ([]model.Movie, error) {
	return s.repo.Find(ctx, repository.MovieFilter{})
}

func (s *movieService) ListByYear(ctx context.Context, year string) ([]model.Movie, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		return nil, ErrYearRequired
	}
	if utf8.RuneCountInString(year) > MaxYearLength {
		return nil, ErrYearTooLong
	}
	return s.repo.Find(ctx, repository.MovieFilter{Year: year})
}

// GetWithSummary summarizes each match by its stored title, one completion per record.
// Any completion failure fails the whole call.
func (s *movieService) GetWithSummary(ctx context.Context, title string) ([]model.Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}

	movies, err := s.repo.Find(ctx, repository.MovieFilter{Title: title})
	if err != nil {
		return nil, err
	}
	for i := range movies {
		text, err := s.generator.Summarize(ctx, movies[i].Title)
		if err != nil {
			return nil, fmt.Errorf("generate summary: %w", err)
		}
		movies[i].GeneratedSummary = text
	}
	return movies, nil
}

// Package summary generates short movie summaries with a hosted text completion model.
package summary

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyCompletion is returned when the provider answers without any choice.
	ErrEmptyCompletion = errors.New("completion returned no choices")
	// ErrProviderFailure wraps every error reported by the completion provider.
	ErrProviderFailure = errors.New("completion provider failure")
)

// Generator produces a summary for a movie title.
// Calls are not cached; the same title may yield a different summary each time.
type Generator interface {
	Summarize(ctx context.Context, title string) (string, error)
}

// Prompt is the fixed instruction sent for a title.
func Prompt(title string) string {
	return fmt.Sprintf("Summarize the movie: %s in 2 sentences", title)
}

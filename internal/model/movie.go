package model

// Movie is a movie record as stored in the document collection.
// GeneratedSummary is never persisted; it is set in memory by the summary path.
type Movie struct {
	Title            string `json:"title" dynamodbav:"title"`
	ReleaseYear      string `json:"releaseYear" dynamodbav:"releaseYear"`
	Genre            string `json:"genre" dynamodbav:"genre"`
	CoverURL         string `json:"coverUrl" dynamodbav:"coverUrl"`
	GeneratedSummary string `json:"generatedSummary,omitempty" dynamodbav:"-"`
}

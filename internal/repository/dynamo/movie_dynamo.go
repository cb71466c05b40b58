package dynamo

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"movieapi/internal/model"
	"movieapi/internal/repository"
)

// tableAPI is the subset of *dynamodb.Client used by the repository.
type tableAPI interface {
	dynamodb.ScanAPIClient
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// MovieDynamo is a DynamoDB implementation of repository.MovieRepository.
// The table is scanned; DynamoDB has no LOWER() so title matching happens here.
type MovieDynamo struct {
	client tableAPI
	table  string
}

// NewMovieDynamo creates a repository reading from the given table.
func NewMovieDynamo(client *dynamodb.Client, table string) *MovieDynamo {
	return &MovieDynamo{client: client, table: table}
}

var _ repository.MovieRepository = (*MovieDynamo)(nil)

// BuildScanInput renders the scan request for a filter.
func BuildScanInput(table string, f repository.MovieFilter) *dynamodb.ScanInput {
	in := &dynamodb.ScanInput{
		TableName:            aws.String(table),
		ProjectionExpression: aws.String("#t, #y, #g, #c"),
		ExpressionAttributeNames: map[string]string{
			"#t": "title",
			"#y": "releaseYear",
			"#g": "genre",
			"#c": "coverUrl",
		},
	}
	if f.Year != "" {
		in.FilterExpression = aws.String("#y = :year")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":year": &types.AttributeValueMemberS{Value: f.Year},
		}
	}
	return in
}

// Find scans the table, draining every page.
func (r *MovieDynamo) Find(ctx context.Context, f repository.MovieFilter) ([]model.Movie, error) {
	p := dynamodb.NewScanPaginator(r.client, BuildScanInput(r.table, f))

	movies := make([]model.Movie, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan movies: %w", err)
		}
		var page []model.Movie
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("decode movies: %w", err)
		}
		for _, m := range page {
			if f.Title != "" && !strings.EqualFold(m.Title, f.Title) {
				continue
			}
			movies = append(movies, m)
		}
	}
	return movies, nil
}

// Ping describes the table.
func (r *MovieDynamo) Ping(ctx context.Context) error {
	if _, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.table)}); err != nil {
		return fmt.Errorf("describe table: %w", err)
	}
	return nil
}

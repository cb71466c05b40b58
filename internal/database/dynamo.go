package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"

	"movieapi/internal/config"
)

// NewDynamo creates a DynamoDB client from the default AWS credential chain.
// Region and endpoint are overridden when set (the latter for DynamoDB Local).
// The SDK keeps its own HTTP client so shared-config options such as
// AWS_CA_BUNDLE still apply; tracing is added as SDK middleware.
func NewDynamo(ctx context.Context, c config.DynamoConfig) (*dynamodb.Client, error) {
	if c.Table == "" {
		return nil, fmt.Errorf("invalid dynamodb config: table is required")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	otelaws.AppendMiddlewares(&cfg.APIOptions)

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}

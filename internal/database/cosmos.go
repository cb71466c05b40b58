package database

import (
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"movieapi/internal/config"
)

var newCosmosClient = azcosmos.NewClientFromConnectionString

// NewCosmos builds the long-lived Cosmos client from a connection string and
// returns the container handle that is reused across requests.
// No request is sent; connectivity is checked by the repository's Ping.
func NewCosmos(c config.CosmosConfig) (*azcosmos.ContainerClient, error) {
	if c.ConnectionString == "" || c.Database == "" || c.Container == "" {
		return nil, fmt.Errorf("invalid cosmos config: connection string, database and container are required")
	}

	client, err := newCosmosClient(c.ConnectionString, &azcosmos.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Transport: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("cosmos client: %w", err)
	}

	container, err := client.NewContainer(c.Database, c.Container)
	if err != nil {
		return nil, fmt.Errorf("cosmos container: %w", err)
	}
	return container, nil
}

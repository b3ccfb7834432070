package ddbmock

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dynaorm/dynaorm"
)

var _ dynaorm.DynamoDBClient = (*Client)(nil)

// NewLocalClient creates a DynamoDB client configured to connect to a
// DynamoDB Local instance on the given port, for integration testing.
func NewLocalClient(port int) *dynamodb.Client {
	endpoint := fmt.Sprintf("http://localhost:%d", port)

	cfg := aws.Config{
		Region:      "us-east-1", // DynamoDB Local doesn't care about region
		Credentials: aws.AnonymousCredentials{},
		EndpointResolverWithOptions: aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL:           endpoint,
					SigningRegion: region,
				}, nil
			},
		),
	}

	return dynamodb.NewFromConfig(cfg)
}

// WaitForLocal blocks until DynamoDB Local answers on the given port or the
// timeout elapses.
func WaitForLocal(ctx context.Context, port int, timeout time.Duration) error {
	client := NewLocalClient(port)
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", fmt.Sprintf("localhost:%d", port), 2*time.Second)
		if err == nil {
			conn.Close()
			if _, err := client.ListTables(ctx, &dynamodb.ListTablesInput{}); err == nil {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}

	return fmt.Errorf("dynamodb local not available on port %d after %v", port, timeout)
}

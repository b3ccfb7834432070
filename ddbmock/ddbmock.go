// Package ddbmock provides an expectation-based mock of the DynamoDB
// operations used by dynaorm, for testing stores without a live endpoint.
package ddbmock

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Call is the common shape of a DynamoDB API operation.
type Call[T, U any] func(context.Context, *T, ...func(*dynamodb.Options)) (*U, error)

// Client is a function-field mock for the DynamoDB operations dynaorm
// performs. Each field defaults to failing the test when called, so a test
// only wires up the operations it expects.
type Client struct {
	PutItemFunc        Call[dynamodb.PutItemInput, dynamodb.PutItemOutput]
	GetItemFunc        Call[dynamodb.GetItemInput, dynamodb.GetItemOutput]
	QueryFunc          Call[dynamodb.QueryInput, dynamodb.QueryOutput]
	BatchWriteItemFunc Call[dynamodb.BatchWriteItemInput, dynamodb.BatchWriteItemOutput]
	CreateTableFunc    Call[dynamodb.CreateTableInput, dynamodb.CreateTableOutput]
	DescribeTableFunc  Call[dynamodb.DescribeTableInput, dynamodb.DescribeTableOutput]
	UpdateTableFunc    Call[dynamodb.UpdateTableInput, dynamodb.UpdateTableOutput]
}

// New creates a mock client whose operations fail the test until replaced.
func New(t *testing.T) *Client {
	return &Client{
		PutItemFunc:        unexpected[dynamodb.PutItemInput, dynamodb.PutItemOutput](t),
		GetItemFunc:        unexpected[dynamodb.GetItemInput, dynamodb.GetItemOutput](t),
		QueryFunc:          unexpected[dynamodb.QueryInput, dynamodb.QueryOutput](t),
		BatchWriteItemFunc: unexpected[dynamodb.BatchWriteItemInput, dynamodb.BatchWriteItemOutput](t),
		CreateTableFunc:    unexpected[dynamodb.CreateTableInput, dynamodb.CreateTableOutput](t),
		DescribeTableFunc:  unexpected[dynamodb.DescribeTableInput, dynamodb.DescribeTableOutput](t),
		UpdateTableFunc:    unexpected[dynamodb.UpdateTableInput, dynamodb.UpdateTableOutput](t),
	}
}

func unexpected[T, U any](t *testing.T) Call[T, U] {
	return func(ctx context.Context, params *T, optFns ...func(*dynamodb.Options)) (*U, error) {
		t.Helper()
		t.Fatalf("unexpected call with %T", params)
		return nil, nil
	}
}

func (c *Client) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return c.PutItemFunc(ctx, params, optFns...)
}

func (c *Client) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return c.GetItemFunc(ctx, params, optFns...)
}

func (c *Client) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return c.QueryFunc(ctx, params, optFns...)
}

func (c *Client) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	return c.BatchWriteItemFunc(ctx, params, optFns...)
}

func (c *Client) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	return c.CreateTableFunc(ctx, params, optFns...)
}

func (c *Client) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return c.DescribeTableFunc(ctx, params, optFns...)
}

func (c *Client) UpdateTable(ctx context.Context, params *dynamodb.UpdateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTableOutput, error) {
	return c.UpdateTableFunc(ctx, params, optFns...)
}

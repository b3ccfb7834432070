package dynaorm

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
)

// DynamoDBClient is the subset of the DynamoDB API the store requires.
// Satisfied by *dynamodb.Client; narrow enough to mock in tests.
type DynamoDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	UpdateTable(ctx context.Context, params *dynamodb.UpdateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTableOutput, error)
}

// Store performs record-level operations against DynamoDB. All wire payloads
// are produced by its Mapper; the store itself holds no mutable state and is
// safe for concurrent use.
type Store struct {
	client DynamoDBClient
	mapper *Mapper
	opts   Options
	logger zerolog.Logger
}

// New creates a Store with the given client and options.
func New(client DynamoDBClient, optFns ...func(*Options)) *Store {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{
		client: client,
		mapper: &Mapper{opts: opts, logger: opts.Logger},
		opts:   opts,
		logger: opts.Logger,
	}
}

// Mapper returns the store's record mapper.
func (s *Store) Mapper() *Mapper {
	return s.mapper
}

// NewDefaultClient creates a DynamoDB client from the ambient AWS
// configuration (environment, shared config files, instance role).
func NewDefaultClient(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

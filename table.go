package dynaorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CreateTable creates the table for a record type. The key schema is derived
// from the named fields; sortField may be empty for a partition-only table.
func (s *Store) CreateTable(ctx context.Context, record any, partitionField, sortField string) error {
	pk, err := s.mapper.KeyDefinition(record, partitionField)
	if err != nil {
		return fmt.Errorf("failed to define partition key: %w", err)
	}

	defs := []types.AttributeDefinition{{
		AttributeName: aws.String(pk.AttributeName),
		AttributeType: pk.ScalarType,
	}}
	schema := []types.KeySchemaElement{{
		AttributeName: aws.String(pk.AttributeName),
		KeyType:       types.KeyTypeHash,
	}}

	if sortField != "" {
		sk, err := s.mapper.KeyDefinition(record, sortField)
		if err != nil {
			return fmt.Errorf("failed to define sort key: %w", err)
		}
		defs = append(defs, types.AttributeDefinition{
			AttributeName: aws.String(sk.AttributeName),
			AttributeType: sk.ScalarType,
		})
		schema = append(schema, types.KeySchemaElement{
			AttributeName: aws.String(sk.AttributeName),
			KeyType:       types.KeyTypeRange,
		})
	}

	table := s.mapper.TableName(record)
	_, err = s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(table),
		AttributeDefinitions: defs,
		KeySchema:            schema,
		BillingMode:          s.opts.BillingMode,
	})
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	s.logger.Debug().Str("table", table).Msg("created table")
	return nil
}

// CreateIndex adds a global secondary index to a record's table. The index
// key schema is derived the same way as the table's, and all attributes are
// projected.
func (s *Store) CreateIndex(ctx context.Context, record any, indexName, partitionField, sortField string) error {
	pk, err := s.mapper.KeyDefinition(record, partitionField)
	if err != nil {
		return fmt.Errorf("failed to define index partition key: %w", err)
	}

	defs := []types.AttributeDefinition{{
		AttributeName: aws.String(pk.AttributeName),
		AttributeType: pk.ScalarType,
	}}
	schema := []types.KeySchemaElement{{
		AttributeName: aws.String(pk.AttributeName),
		KeyType:       types.KeyTypeHash,
	}}

	if sortField != "" {
		sk, err := s.mapper.KeyDefinition(record, sortField)
		if err != nil {
			return fmt.Errorf("failed to define index sort key: %w", err)
		}
		defs = append(defs, types.AttributeDefinition{
			AttributeName: aws.String(sk.AttributeName),
			AttributeType: sk.ScalarType,
		})
		schema = append(schema, types.KeySchemaElement{
			AttributeName: aws.String(sk.AttributeName),
			KeyType:       types.KeyTypeRange,
		})
	}

	table := s.mapper.TableName(record)
	_, err = s.client.UpdateTable(ctx, &dynamodb.UpdateTableInput{
		TableName:            aws.String(table),
		AttributeDefinitions: defs,
		GlobalSecondaryIndexUpdates: []types.GlobalSecondaryIndexUpdate{{
			Create: &types.CreateGlobalSecondaryIndexAction{
				IndexName: aws.String(indexName),
				KeySchema: schema,
				Projection: &types.Projection{
					ProjectionType: types.ProjectionTypeAll,
				},
			},
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to create index %s on table %s: %w", indexName, table, err)
	}

	s.logger.Debug().Str("table", table).Str("index", indexName).Msg("created index")
	return nil
}

// TableExists reports whether the record's table exists. A missing table is
// not an error.
func (s *Store) TableExists(ctx context.Context, record any) (bool, error) {
	table := s.mapper.TableName(record)
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})

	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to describe table %s: %w", table, err)
	}
	return true, nil
}

package dynaorm

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	// MaxBatchSize is the maximum number of items allowed in a DynamoDB
	// batch write operation.
	MaxBatchSize = 25

	// maxBatchRetries bounds the retry loop for unprocessed batch items.
	maxBatchRetries = 5
)

// Put writes a record as a complete item. Fields holding their zero value are
// omitted from the payload; a record with no encodable fields produces an
// empty item that DynamoDB itself rejects.
func (s *Store) Put(ctx context.Context, record any) error {
	if s.opts.GenerateIDs {
		s.generateID(record)
	}

	table := s.mapper.TableName(record)
	item := s.mapper.MarshalRecord(record)

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in %s: %w", table, err)
	}

	s.logger.Debug().Str("table", table).Int("attributes", len(item)).Msg("put item")
	return nil
}

// Get loads the item for the given key values into out, which must be a
// pointer to a record struct with a tagged partition key. Key attributes are
// resolved from the record's own field values first, falling back to the
// supplied values where a field holds its zero value.
func (s *Store) Get(ctx context.Context, out any, partitionValue, sortValue any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("out must be a non-nil pointer to a record struct")
	}

	pkField, skField := keyFields(rv.Type())
	if pkField == "" {
		return fmt.Errorf("%s: %w", rv.Elem().Type().Name(), ErrMissingPartitionKey)
	}

	key := Item{}
	av, ok := s.mapper.MarshalField(out, pkField, partitionValue)
	if !ok {
		return fmt.Errorf("field %q: %w", pkField, ErrMissingPartitionKey)
	}
	key[s.mapper.AttributeName(pkField)] = av

	if skField != "" {
		if av, ok := s.mapper.MarshalField(out, skField, sortValue); ok {
			key[s.mapper.AttributeName(skField)] = av
		}
	}

	table := s.mapper.TableName(out)
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to get item from %s: %w", table, err)
	}
	if resp.Item == nil {
		return ErrItemNotFound
	}

	if err := attributevalue.UnmarshalMap(resp.Item, out); err != nil {
		return fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return nil
}

// Query runs a key-condition query against a record's table, decoding results
// into out (a pointer to a slice of records). The partition key field comes
// from the record's tags. Returns an opaque cursor for the next page, empty
// when no pages remain.
func (s *Store) Query(ctx context.Context, out any, partitionValue any, opts ...QueryOption) (string, error) {
	elemType, err := sliceElemType(out)
	if err != nil {
		return "", err
	}

	pkField, skField := keyFields(elemType)
	if pkField == "" {
		return "", fmt.Errorf("%s: %w", elemType.Name(), ErrMissingPartitionKey)
	}

	record := reflect.New(elemType).Interface()
	pkValue, ok := s.mapper.MarshalField(record, pkField, partitionValue)
	if !ok {
		return "", fmt.Errorf("field %q: %w", pkField, ErrMissingPartitionKey)
	}

	qo := newQueryOptions(opts)
	return s.runQuery(ctx, out, s.mapper.TableName(record), "",
		s.mapper.AttributeName(pkField), pkValue, s.sortAttr(skField, qo), qo)
}

// QueryIndex runs a key-condition query against a global secondary index.
// The index partition key is named explicitly since it need not match the
// table's; sort key conditions require WithIndexSortField.
func (s *Store) QueryIndex(ctx context.Context, out any, indexName, partitionField string, partitionValue any, opts ...QueryOption) (string, error) {
	elemType, err := sliceElemType(out)
	if err != nil {
		return "", err
	}

	record := reflect.New(elemType).Interface()
	pkValue, ok := s.mapper.MarshalField(record, partitionField, partitionValue)
	if !ok {
		// ad hoc key value not backed by a record field
		if pkValue, ok = s.mapper.marshalValue(partitionValue); !ok {
			return "", fmt.Errorf("field %q: %w", partitionField, ErrMissingPartitionKey)
		}
	}

	qo := newQueryOptions(opts)
	return s.runQuery(ctx, out, s.mapper.TableName(record), indexName,
		s.mapper.AttributeName(partitionField), pkValue, s.sortAttr(qo.sortField, qo), qo)
}

// sortAttr picks the sort key attribute name: an explicit index sort field
// wins over the record's tagged one.
func (s *Store) sortAttr(tagged string, qo queryOptions) string {
	if qo.sortField != "" {
		return s.mapper.AttributeName(qo.sortField)
	}
	if tagged == "" {
		return ""
	}
	return s.mapper.AttributeName(tagged)
}

func (s *Store) runQuery(ctx context.Context, out any, table, index, pkAttr string, pkValue types.AttributeValue, skAttr string, qo queryOptions) (string, error) {
	exprNames := map[string]string{"#pk": pkAttr}
	exprValues := map[string]types.AttributeValue{":pk": pkValue}
	keyExpr := "#pk = :pk"

	if qo.sortCond != nil {
		if skAttr == "" {
			return "", fmt.Errorf("sort key condition requires a sort key field")
		}
		exprNames["#sk"] = skAttr
		for i, v := range qo.sortCond.values {
			av, ok := s.mapper.marshalValue(v)
			if !ok {
				return "", fmt.Errorf("sort key value %d is not encodable", i)
			}
			exprValues[fmt.Sprintf(":sk%d", i)] = av
		}
		switch qo.sortCond.op {
		case sortOpBeginsWith:
			keyExpr += " AND begins_with(#sk, :sk0)"
		case sortOpBetween:
			keyExpr += " AND #sk BETWEEN :sk0 AND :sk1"
		default:
			keyExpr += fmt.Sprintf(" AND #sk %s :sk0", qo.sortCond.op)
		}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    aws.String(keyExpr),
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
		ScanIndexForward:          aws.Bool(!qo.descending),
		ConsistentRead:            aws.Bool(qo.consistent),
	}
	if index != "" {
		input.IndexName = aws.String(index)
	}
	if qo.limit > 0 {
		input.Limit = aws.Int32(qo.limit)
	}

	if qo.hasFilter || len(qo.projection) > 0 {
		builder := expression.NewBuilder()
		if qo.hasFilter {
			builder = builder.WithFilter(qo.filter)
		}
		if len(qo.projection) > 0 {
			nameBuilders := make([]expression.NameBuilder, len(qo.projection))
			for i, field := range qo.projection {
				nameBuilders[i] = expression.Name(s.mapper.AttributeName(field))
			}
			builder = builder.WithProjection(expression.NamesList(nameBuilders[0], nameBuilders[1:]...))
		}

		expr, err := builder.Build()
		if err != nil {
			return "", fmt.Errorf("failed to build expression: %w", err)
		}
		for k, v := range expr.Names() {
			exprNames[k] = v
		}
		for k, v := range expr.Values() {
			exprValues[k] = v
		}
		input.FilterExpression = expr.Filter()
		input.ProjectionExpression = expr.Projection()
	}

	if qo.cursor != "" {
		startKey, err := decodeCursor(qo.cursor)
		if err != nil {
			return "", err
		}
		input.ExclusiveStartKey = startKey
	}

	resp, err := s.client.Query(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", table, err)
	}

	if err := attributevalue.UnmarshalListOfMaps(resp.Items, out); err != nil {
		return "", fmt.Errorf("failed to unmarshal query results: %w", err)
	}

	next, err := encodeCursor(resp.LastEvaluatedKey)
	if err != nil {
		return "", err
	}

	s.logger.Debug().Str("table", table).Str("index", index).
		Int("items", len(resp.Items)).Msg("query")
	return next, nil
}

// BatchPut writes records in chunks of MaxBatchSize, retrying unprocessed
// items with capped exponential backoff. Records may target different tables.
func (s *Store) BatchPut(ctx context.Context, records ...any) error {
	requests := make(map[string][]types.WriteRequest)
	var total int

	for _, record := range records {
		if s.opts.GenerateIDs {
			s.generateID(record)
		}
		table := s.mapper.TableName(record)
		requests[table] = append(requests[table], types.WriteRequest{
			PutRequest: &types.PutRequest{Item: s.mapper.MarshalRecord(record)},
		})
		total++
	}

	pending := make(map[string][]types.WriteRequest)
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := s.writeBatch(ctx, pending); err != nil {
			return err
		}
		pending = make(map[string][]types.WriteRequest)
		return nil
	}

	count := 0
	for table, reqs := range requests {
		for _, req := range reqs {
			pending[table] = append(pending[table], req)
			count++
			if count == MaxBatchSize {
				if err := flush(); err != nil {
					return err
				}
				count = 0
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	s.logger.Debug().Int("records", total).Msg("batch put")
	return nil
}

// writeBatch issues one BatchWriteItem call and drains unprocessed items.
func (s *Store) writeBatch(ctx context.Context, items map[string][]types.WriteRequest) error {
	for attempt := 0; ; attempt++ {
		resp, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: items,
		})
		if err != nil {
			return fmt.Errorf("failed to batch write: %w", err)
		}
		if len(resp.UnprocessedItems) == 0 {
			return nil
		}
		if attempt == maxBatchRetries {
			return fmt.Errorf("batch write left %d tables with unprocessed items after %d retries",
				len(resp.UnprocessedItems), maxBatchRetries)
		}

		items = resp.UnprocessedItems
		backoff := time.Duration(1<<attempt) * 100 * time.Millisecond
		s.logger.Warn().Int("attempt", attempt+1).Dur("backoff", backoff).
			Msg("retrying unprocessed batch items")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// generateID fills a zero string partition key with a fresh UUID. The record
// must be an addressable struct pointer; anything else is left untouched.
func (s *Store) generateID(record any) {
	rv := reflect.ValueOf(record)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return
	}

	pkField, _ := keyFields(rv.Type())
	if pkField == "" {
		return
	}

	fv := rv.FieldByName(pkField)
	if fv.IsValid() && fv.CanSet() && fv.Kind() == reflect.String && fv.String() == "" {
		fv.SetString(uuid.NewString())
	}
}

// sliceElemType extracts the record struct type from a *[]T destination.
func sliceElemType(out any) (reflect.Type, error) {
	t := reflect.TypeOf(out)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Slice {
		return nil, fmt.Errorf("out must be a pointer to a slice of records")
	}
	elem := t.Elem().Elem()
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("out must be a slice of record structs")
	}
	return elem, nil
}

package dynaorm

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

const (
	sortOpEqual          = "="
	sortOpLessThan       = "<"
	sortOpLessOrEqual    = "<="
	sortOpGreaterThan    = ">"
	sortOpGreaterOrEqual = ">="
	sortOpBeginsWith     = "begins_with"
	sortOpBetween        = "between"
)

// sortCondition is a single operator applied to the query's sort key.
type sortCondition struct {
	op     string
	values []any
}

type queryOptions struct {
	sortField  string
	sortCond   *sortCondition
	filter     expression.ConditionBuilder
	hasFilter  bool
	projection []string
	limit      int32
	descending bool
	cursor     string
	consistent bool
}

// QueryOption adjusts a single Query or QueryIndex call.
type QueryOption func(*queryOptions)

func newQueryOptions(opts []QueryOption) queryOptions {
	var qo queryOptions
	for _, opt := range opts {
		opt(&qo)
	}
	return qo
}

// WithSortKeyEqual restricts results to an exact sort key value.
func WithSortKeyEqual(value any) QueryOption {
	return func(qo *queryOptions) {
		qo.sortCond = &sortCondition{op: sortOpEqual, values: []any{value}}
	}
}

// WithSortKeyBeginsWith restricts results to sort keys with the given prefix.
func WithSortKeyBeginsWith(prefix string) QueryOption {
	return func(qo *queryOptions) {
		qo.sortCond = &sortCondition{op: sortOpBeginsWith, values: []any{prefix}}
	}
}

// WithSortKeyBetween restricts results to sort keys within [lo, hi].
func WithSortKeyBetween(lo, hi any) QueryOption {
	return func(qo *queryOptions) {
		qo.sortCond = &sortCondition{op: sortOpBetween, values: []any{lo, hi}}
	}
}

// WithSortKeyLessThan restricts results to sort keys below the given value.
func WithSortKeyLessThan(value any) QueryOption {
	return func(qo *queryOptions) {
		qo.sortCond = &sortCondition{op: sortOpLessThan, values: []any{value}}
	}
}

// WithSortKeyAtMost restricts results to sort keys at or below the given value.
func WithSortKeyAtMost(value any) QueryOption {
	return func(qo *queryOptions) {
		qo.sortCond = &sortCondition{op: sortOpLessOrEqual, values: []any{value}}
	}
}

// WithSortKeyGreaterThan restricts results to sort keys above the given value.
func WithSortKeyGreaterThan(value any) QueryOption {
	return func(qo *queryOptions) {
		qo.sortCond = &sortCondition{op: sortOpGreaterThan, values: []any{value}}
	}
}

// WithSortKeyAtLeast restricts results to sort keys at or above the given value.
func WithSortKeyAtLeast(value any) QueryOption {
	return func(qo *queryOptions) {
		qo.sortCond = &sortCondition{op: sortOpGreaterOrEqual, values: []any{value}}
	}
}

// WithIndexSortField names the record field serving as an index's sort key.
// Required when applying sort key conditions to QueryIndex.
func WithIndexSortField(field string) QueryOption {
	return func(qo *queryOptions) { qo.sortField = field }
}

// WithQueryFilter applies a post-read filter expression to results.
func WithQueryFilter(filter expression.ConditionBuilder) QueryOption {
	return func(qo *queryOptions) {
		qo.filter = filter
		qo.hasFilter = true
	}
}

// WithProjection limits the attributes returned, named by record field.
func WithProjection(fields ...string) QueryOption {
	return func(qo *queryOptions) { qo.projection = fields }
}

// WithQueryLimit caps the number of items evaluated per page.
func WithQueryLimit(limit int32) QueryOption {
	return func(qo *queryOptions) { qo.limit = limit }
}

// WithDescending reverses the sort key scan direction.
func WithDescending() QueryOption {
	return func(qo *queryOptions) { qo.descending = true }
}

// WithStartCursor resumes a query from a cursor returned by a previous page.
func WithStartCursor(cursor string) QueryOption {
	return func(qo *queryOptions) { qo.cursor = cursor }
}

// WithConsistentRead requests strongly consistent reads. Not valid for
// global secondary index queries.
func WithConsistentRead() QueryOption {
	return func(qo *queryOptions) { qo.consistent = true }
}

package dynaorm

import "errors"

// ErrItemNotFound is returned by Get when no item exists for the resolved key.
var ErrItemNotFound = errors.New("item not found")

// ErrUnsupportedKeyType is returned by KeyDefinition when a field's semantic
// kind cannot serve as a table or index key. This is a hard configuration
// error, distinct from the soft per-field omission the encoder applies:
// a table cannot be created without a typed key.
var ErrUnsupportedKeyType = errors.New("unsupported key type")

// ErrMissingPartitionKey is returned by key-resolution paths when a record
// type declares no partition key tag, or when neither the record field nor a
// caller-supplied value yields an encodable key.
var ErrMissingPartitionKey = errors.New("partition key not resolved")

// ErrInvalidCursor is returned by Query when a continuation cursor cannot be
// decoded back into a start key.
var ErrInvalidCursor = errors.New("invalid pagination cursor")

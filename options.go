package dynaorm

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

// Options holds store-wide configuration. The naming policy portion is fixed
// at construction and read-only afterwards, so a single Store (and its
// Mapper) is safe for concurrent use.
type Options struct {
	// CamelCaseTableNames converts derived table names to lowerCamelCase.
	CamelCaseTableNames bool

	// PluralizeTableNames pluralizes derived table names, e.g. a Category
	// record maps to the "Categories" table. Explicit TableNamer overrides
	// bypass pluralization.
	PluralizeTableNames bool

	// CamelCaseFields converts snake_case field names to lowerCamelCase
	// wire attribute names.
	CamelCaseFields bool

	// GenerateIDs fills a zero string partition key with a new UUID on Put.
	GenerateIDs bool

	// BillingMode used by CreateTable. Default is on-demand.
	BillingMode types.BillingMode

	// Logger receives operation traces and soft-failure warnings.
	// Defaults to a no-op logger.
	Logger zerolog.Logger
}

func defaultOptions() Options {
	return Options{
		BillingMode: types.BillingModePayPerRequest,
		Logger:      zerolog.Nop(),
	}
}

// WithCamelCaseTableNames enables lowerCamelCase table name conversion.
func WithCamelCaseTableNames() func(*Options) {
	return func(o *Options) { o.CamelCaseTableNames = true }
}

// WithPluralizeTableNames enables table name pluralization.
func WithPluralizeTableNames() func(*Options) {
	return func(o *Options) { o.PluralizeTableNames = true }
}

// WithCamelCaseFields enables lowerCamelCase attribute name conversion.
func WithCamelCaseFields() func(*Options) {
	return func(o *Options) { o.CamelCaseFields = true }
}

// WithGeneratedIDs enables UUID generation for zero string partition keys on Put.
func WithGeneratedIDs() func(*Options) {
	return func(o *Options) { o.GenerateIDs = true }
}

// WithBillingMode overrides the billing mode used by CreateTable.
func WithBillingMode(mode types.BillingMode) func(*Options) {
	return func(o *Options) { o.BillingMode = mode }
}

// WithLogger attaches a logger to the store and its mapper.
func WithLogger(logger zerolog.Logger) func(*Options) {
	return func(o *Options) { o.Logger = logger }
}

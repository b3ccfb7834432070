package dynaorm

import (
	"reflect"

	"github.com/rs/zerolog"

	"github.com/dynaorm/dynaorm/internal/names"
)

// TableNamer overrides table name derivation for a record type. An explicit
// name bypasses both pluralization and case conversion.
type TableNamer interface {
	TableName() string
}

// Mapper converts records and record fields into DynamoDB attribute values
// and key definitions. A Mapper is immutable after construction and safe for
// concurrent use.
type Mapper struct {
	opts   Options
	logger zerolog.Logger
}

// NewMapper constructs a Mapper from the given options.
func NewMapper(optFns ...func(*Options)) *Mapper {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Mapper{opts: opts, logger: opts.Logger}
}

// AttributeName sanitizes a field name into its wire attribute name. With
// camel-case fields disabled this is the identity function; enabled, it
// converts snake_case to lowerCamelCase. The conversion is idempotent since
// the first pass removes every underscore.
func (m *Mapper) AttributeName(name string) string {
	if !m.opts.CamelCaseFields {
		return name
	}
	return names.LowerCamel(name)
}

// TableName derives the table name for a record. TableNamer implementations
// win outright; otherwise the record's type name is pluralized and cased
// according to the naming policy.
func (m *Mapper) TableName(record any) string {
	if namer, ok := record.(TableNamer); ok {
		return namer.TableName()
	}

	t := reflect.TypeOf(record)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}

	name := t.Name()
	if m.opts.PluralizeTableNames {
		name = names.Pluralize(name)
	}
	if m.opts.CamelCaseTableNames {
		name = names.LowerCamel(name)
	}
	return name
}

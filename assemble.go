package dynaorm

import (
	"reflect"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is an alias for the dynamodb attribute value map.
type Item = map[string]types.AttributeValue

// MarshalRecord assembles a complete wire item from a record, visiting every
// exported field in declaration order. Fields that encode to absent are
// omitted entirely; the result is never padded with null entries. A record
// with no encodable fields yields an empty map, which the wire boundary, not
// this layer, will reject.
func (m *Mapper) MarshalRecord(record any) Item {
	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			m.logger.Warn().Msg("nil record")
			return Item{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		m.logger.Warn().Str("type", rv.Type().String()).Msg("record is not a struct")
		return Item{}
	}

	return m.marshalStruct(rv, 0)
}

// marshalStruct builds the item map for one struct value. Duplicate sanitized
// names keep the first occurrence; later same-name fields are dropped.
func (m *Mapper) marshalStruct(rv reflect.Value, depth int) Item {
	item := Item{}
	t := rv.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := m.AttributeName(field.Name)
		if _, exists := item[name]; exists {
			continue
		}

		av, ok := m.encodeValue(rv.Field(i), nil, depth)
		if !ok {
			continue
		}
		item[name] = av
	}

	return item
}

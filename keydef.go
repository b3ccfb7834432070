package dynaorm

import (
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// KeyDescriptor declares a key attribute for table and index creation. It
// carries the sanitized wire name and the scalar wire type, never a value.
type KeyDescriptor struct {
	AttributeName string
	ScalarType    types.ScalarAttributeType
}

// KeyDefinition resolves the wire-level scalar type declaration for a key
// field. If the named field does not exist on the record's type, the record
// itself is classified instead, which supports keys supplied as ad hoc
// values rather than record fields.
//
// Unlike field encoding, an unmappable key type is a hard error: a table
// cannot be created without a typed key.
func (m *Mapper) KeyDefinition(record any, field string) (KeyDescriptor, error) {
	t := reflect.TypeOf(record)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return KeyDescriptor{}, fmt.Errorf("key field %q: nil record: %w", field, ErrUnsupportedKeyType)
	}

	kind := KindUnsupported
	if t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(field); ok && sf.IsExported() {
			kind = resolveKind(sf.Type)
		} else {
			kind = resolveKind(t)
		}
	} else {
		kind = resolveKind(t)
	}

	scalar, err := keyScalarType(kind)
	if err != nil {
		return KeyDescriptor{}, fmt.Errorf("key field %q: %w", field, err)
	}

	return KeyDescriptor{
		AttributeName: m.AttributeName(field),
		ScalarType:    scalar,
	}, nil
}

// keyScalarType maps a semantic kind onto a key schema scalar type. The
// binary scalar type exists on the wire but no semantic kind produces it.
func keyScalarType(kind Kind) (types.ScalarAttributeType, error) {
	switch kind {
	case KindInt, KindFloat, KindDouble, KindNullable:
		return types.ScalarAttributeTypeN, nil
	case KindString, KindTime:
		return types.ScalarAttributeTypeS, nil
	case KindBool:
		return "", fmt.Errorf("%w: boolean attributes cannot key a table", ErrUnsupportedKeyType)
	default:
		return "", fmt.Errorf("%w: kind %s", ErrUnsupportedKeyType, kind)
	}
}

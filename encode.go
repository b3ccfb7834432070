package dynaorm

import (
	"reflect"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxEncodeDepth bounds recursive nested-record encoding. A cyclic record
// graph would otherwise recurse until the stack blew; past the ceiling the
// offending field degrades to absent.
const maxEncodeDepth = 32

// MarshalField encodes a single record field into its attribute value. The
// second return value is false when no attribute is produced: the field's
// type is unsupported, its value is the kind's zero value with no usable
// fallback, or the field could not be read at all.
//
// The fallback is substituted only when the field holds its zero value. It is
// supplied on key-resolution paths (Get, Query) where the caller passes key
// values alongside a possibly-blank record; full-record saves never pass one.
//
// Encoding never returns an error for a single field. Unsupported types are
// skipped silently; unexpected lookup failures are skipped too, but logged,
// since they tend to indicate a bug rather than an intentionally absent
// attribute.
func (m *Mapper) MarshalField(record any, field string, fallback any) (types.AttributeValue, bool) {
	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			m.logger.Warn().Str("field", field).Msg("nil record")
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		m.logger.Warn().Str("field", field).Str("type", rv.Type().String()).
			Msg("record is not a struct")
		return nil, false
	}

	sf, ok := rv.Type().FieldByName(field)
	if !ok || !sf.IsExported() {
		m.logger.Warn().Str("field", field).Str("record", rv.Type().Name()).
			Msg("field not found on record")
		return nil, false
	}

	return m.encodeValue(rv.FieldByIndex(sf.Index), fallback, 0)
}

// encodeValue dispatches on the value's semantic kind. Nested record lists
// recurse with an incremented depth.
func (m *Mapper) encodeValue(v reflect.Value, fallback any, depth int) (types.AttributeValue, bool) {
	if depth > maxEncodeDepth {
		m.logger.Warn().Str("type", v.Type().String()).
			Msg("record nesting exceeds depth ceiling")
		return nil, false
	}

	kind := resolveKind(v.Type())
	switch {
	case kind == KindUnsupported:
		return nil, false

	case kind.isScalar():
		if v.IsZero() {
			fv, ok := usableFallback(fallback)
			if !ok {
				return nil, false
			}
			return m.encodeValue(fv, nil, depth)
		}
		return scalarAttr(v, kind)

	case kind == KindStringSet:
		if v.Len() == 0 {
			return nil, false
		}
		ss := make([]string, v.Len())
		for i := range ss {
			ss[i] = v.Index(i).String()
		}
		return &types.AttributeValueMemberSS{Value: ss}, true

	case kind == KindNullable:
		if v.IsNil() {
			fv, ok := usableFallback(fallback)
			if !ok {
				return nil, false
			}
			return m.encodeValue(fv, nil, depth)
		}
		elem := v.Elem()
		return scalarAttr(elem, resolveKind(elem.Type()))

	case kind == KindList:
		if v.Len() == 0 {
			return nil, false
		}
		elems := make([]types.AttributeValue, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			item := m.marshalStruct(v.Index(i), depth+1)
			elems = append(elems, &types.AttributeValueMemberM{Value: item})
		}
		return &types.AttributeValueMemberL{Value: elems}, true
	}

	return nil, false
}

// marshalValue encodes an ad hoc value by its runtime type. Used where key
// values arrive detached from any record field, such as index queries.
func (m *Mapper) marshalValue(value any) (types.AttributeValue, bool) {
	if value == nil {
		return nil, false
	}
	return m.encodeValue(reflect.ValueOf(value), nil, 0)
}

// usableFallback unwraps a caller-supplied fallback. A nil or zero fallback
// leaves the zero field absent.
func usableFallback(fallback any) (reflect.Value, bool) {
	if fallback == nil {
		return reflect.Value{}, false
	}
	fv := reflect.ValueOf(fallback)
	if fv.IsZero() {
		return reflect.Value{}, false
	}
	return fv, true
}

// scalarAttr encodes a non-zero scalar. Numbers are always carried as their
// decimal string representation in N members, matching the DynamoDB wire
// shape; they are never sent as native binary numbers.
func scalarAttr(v reflect.Value, kind Kind) (types.AttributeValue, bool) {
	switch kind {
	case KindBool:
		return &types.AttributeValueMemberBOOL{Value: v.Bool()}, true
	case KindInt:
		var s string
		switch v.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			s = strconv.FormatUint(v.Uint(), 10)
		default:
			s = strconv.FormatInt(v.Int(), 10)
		}
		return &types.AttributeValueMemberN{Value: s}, true
	case KindFloat:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v.Float(), 'f', -1, 32)}, true
	case KindDouble:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v.Float(), 'f', -1, 64)}, true
	case KindString:
		s := v.String()
		if s == "" {
			return nil, false
		}
		return &types.AttributeValueMemberS{Value: s}, true
	case KindTime:
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return nil, false
		}
		return &types.AttributeValueMemberS{Value: t.UTC().Format(time.RFC3339Nano)}, true
	}
	return nil, false
}

package dynaorm

import (
	"reflect"
	"time"
)

// Kind classifies a record field's declared Go type independently of the
// wire representation. Types outside this set resolve to KindUnsupported,
// which the encoder treats as "produce no attribute" rather than an error.
type Kind int

const (
	KindUnsupported Kind = iota
	KindBool
	KindInt       // all signed and unsigned integer widths
	KindFloat     // float32
	KindDouble    // float64
	KindString
	KindTime      // time.Time
	KindStringSet // []string, order preserving
	KindNullable  // pointer to a numeric kind
	KindList      // slice of nested record structs
)

var kindNames = map[Kind]string{
	KindUnsupported: "unsupported",
	KindBool:        "bool",
	KindInt:         "int",
	KindFloat:       "float",
	KindDouble:      "double",
	KindString:      "string",
	KindTime:        "time",
	KindStringSet:   "stringset",
	KindNullable:    "nullable",
	KindList:        "list",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unsupported"
}

var timeType = reflect.TypeOf(time.Time{})

// resolveKind maps a declared field type onto its semantic kind. Generic
// single-argument wrappers (pointers, slices) are distinguished by their
// shape first; element types are only inspected as far as classification
// requires.
func resolveKind(t reflect.Type) Kind {
	if t == nil {
		return KindUnsupported
	}
	if t == timeType {
		return KindTime
	}

	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt
	case reflect.Float32:
		return KindFloat
	case reflect.Float64:
		return KindDouble
	case reflect.String:
		return KindString
	case reflect.Slice:
		switch elem := t.Elem(); {
		case elem.Kind() == reflect.String:
			return KindStringSet
		case elem.Kind() == reflect.Struct && elem != timeType:
			return KindList
		default:
			return KindUnsupported
		}
	case reflect.Pointer:
		switch resolveKind(t.Elem()) {
		case KindInt, KindFloat, KindDouble:
			return KindNullable
		default:
			return KindUnsupported
		}
	default:
		return KindUnsupported
	}
}

// isScalar reports whether the kind carries a single scalar payload, which is
// the set subject to the zero-value fallback rule.
func (k Kind) isScalar() bool {
	switch k {
	case KindBool, KindInt, KindFloat, KindDouble, KindString, KindTime:
		return true
	default:
		return false
	}
}

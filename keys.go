package dynaorm

import (
	"reflect"
	"strings"
)

// tagName is the struct tag key used to mark partition and sort key fields.
const tagName = "dynaorm"

const (
	tagPartition = "partition"
	tagSort      = "sort"
)

// keyFields scans a record type's tags for its partition and sort key field
// names. Missing tags yield empty strings; callers decide whether that is
// fatal for the operation at hand.
func keyFields(t reflect.Type) (partition, sort string) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", ""
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		for _, part := range strings.Split(field.Tag.Get(tagName), ",") {
			switch strings.TrimSpace(part) {
			case tagPartition:
				if partition == "" {
					partition = field.Name
				}
			case tagSort:
				if sort == "" {
					sort = field.Name
				}
			}
		}
	}
	return partition, sort
}

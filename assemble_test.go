package dynaorm

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestMarshalRecord(t *testing.T) {
	assert := require.New(t)
	mapper := NewMapper()

	item := mapper.MarshalRecord(customer{Name: "Ada"})
	assert.Len(item, 1)
	assert.Equal("Ada", item["Name"].(*types.AttributeValueMemberS).Value)

	// pointer records marshal the same as values
	item = mapper.MarshalRecord(&customer{Name: "Ada", Age: 42})
	assert.Len(item, 2)
	assert.Equal("42", item["Age"].(*types.AttributeValueMemberN).Value)
}

func TestMarshalRecordSkipsAbsentFields(t *testing.T) {
	assert := require.New(t)
	mapper := NewMapper()

	item := mapper.MarshalRecord(customer{})
	assert.Empty(item)

	item = mapper.MarshalRecord(customer{Tags: []string{}})
	assert.Empty(item)
}

func TestMarshalRecordSkipsUnexportedAndUnsupported(t *testing.T) {
	assert := require.New(t)
	mapper := NewMapper()

	type rec struct {
		Name   string
		secret string
		Meta   map[string]string
	}

	item := mapper.MarshalRecord(rec{Name: "x", secret: "y", Meta: map[string]string{"a": "b"}})
	assert.Len(item, 1)
	assert.Contains(item, "Name")
}

func TestMarshalRecordDuplicateSanitizedNames(t *testing.T) {
	assert := require.New(t)
	mapper := NewMapper(WithCamelCaseFields())

	// both fields sanitize to "userId"; the first declared wins
	type rec struct {
		User_id string
		UserId  string
	}

	item := mapper.MarshalRecord(rec{User_id: "first", UserId: "second"})
	assert.Len(item, 1)
	assert.Equal("first", item["userId"].(*types.AttributeValueMemberS).Value)
}

func TestMarshalRecordNonStruct(t *testing.T) {
	assert := require.New(t)
	mapper := NewMapper()

	assert.Empty(mapper.MarshalRecord("not a struct"))
	assert.Empty(mapper.MarshalRecord(42))

	var nilRec *customer
	assert.Empty(mapper.MarshalRecord(nilRec))
}

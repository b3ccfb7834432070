package dynaorm

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestKeyDefinition(t *testing.T) {
	assert := require.New(t)
	mapper := NewMapper()

	def, err := mapper.KeyDefinition(customer{}, "ID")
	assert.NoError(err)
	assert.Equal("ID", def.AttributeName)
	assert.Equal(types.ScalarAttributeTypeS, def.ScalarType)

	def, err = mapper.KeyDefinition(customer{}, "Age")
	assert.NoError(err)
	assert.Equal(types.ScalarAttributeTypeN, def.ScalarType)

	def, err = mapper.KeyDefinition(customer{}, "Rating")
	assert.NoError(err)
	assert.Equal(types.ScalarAttributeTypeN, def.ScalarType)

	def, err = mapper.KeyDefinition(customer{}, "Balance")
	assert.NoError(err)
	assert.Equal(types.ScalarAttributeTypeN, def.ScalarType)

	def, err = mapper.KeyDefinition(customer{}, "Credit")
	assert.NoError(err)
	assert.Equal(types.ScalarAttributeTypeN, def.ScalarType)

	// timestamps key as their string encoding
	def, err = mapper.KeyDefinition(customer{}, "Joined")
	assert.NoError(err)
	assert.Equal(types.ScalarAttributeTypeS, def.ScalarType)

	// pointer records resolve against the element type
	def, err = mapper.KeyDefinition(&customer{}, "ID")
	assert.NoError(err)
	assert.Equal(types.ScalarAttributeTypeS, def.ScalarType)
}

func TestKeyDefinitionSanitizesName(t *testing.T) {
	assert := require.New(t)
	mapper := NewMapper(WithCamelCaseFields())

	type rec struct {
		User_id string
	}

	def, err := mapper.KeyDefinition(rec{}, "User_id")
	assert.NoError(err)
	assert.Equal("userId", def.AttributeName)
}

func TestKeyDefinitionAdHocValue(t *testing.T) {
	assert := require.New(t)
	mapper := NewMapper()

	// when the field is not found, the value's own type is classified
	def, err := mapper.KeyDefinition("some-id", "pk")
	assert.NoError(err)
	assert.Equal("pk", def.AttributeName)
	assert.Equal(types.ScalarAttributeTypeS, def.ScalarType)

	def, err = mapper.KeyDefinition(int64(7), "version")
	assert.NoError(err)
	assert.Equal(types.ScalarAttributeTypeN, def.ScalarType)
}

func TestKeyDefinitionUnsupported(t *testing.T) {
	assert := require.New(t)
	mapper := NewMapper()

	_, err := mapper.KeyDefinition(customer{}, "Active")
	assert.ErrorIs(err, ErrUnsupportedKeyType)

	_, err = mapper.KeyDefinition(customer{}, "Tags")
	assert.ErrorIs(err, ErrUnsupportedKeyType)

	_, err = mapper.KeyDefinition(customer{}, "History")
	assert.ErrorIs(err, ErrUnsupportedKeyType)

	_, err = mapper.KeyDefinition(map[string]string{}, "pk")
	assert.True(errors.Is(err, ErrUnsupportedKeyType))

	_, err = mapper.KeyDefinition(nil, "ID")
	assert.ErrorIs(err, ErrUnsupportedKeyType)
}

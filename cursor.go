package dynaorm

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

func init() {
	// Register DynamoDB types with gob
	gob.Register(map[string]types.AttributeValue{})
	gob.Register(&types.AttributeValueMemberS{})
	gob.Register(&types.AttributeValueMemberN{})
	gob.Register(&types.AttributeValueMemberB{})
	gob.Register(&types.AttributeValueMemberSS{})
	gob.Register(&types.AttributeValueMemberNS{})
	gob.Register(&types.AttributeValueMemberBS{})
	gob.Register(&types.AttributeValueMemberM{})
	gob.Register(&types.AttributeValueMemberL{})
	gob.Register(&types.AttributeValueMemberNULL{})
	gob.Register(&types.AttributeValueMemberBOOL{})
}

// pageCursor carries a query's last evaluated key between pages. The nonce
// keeps cursors for the same table position distinct across issuances.
type pageCursor struct {
	Nonce string
	Key   map[string]types.AttributeValue
}

// encodeCursor converts a last evaluated key into an opaque client token.
// A nil or empty key yields an empty token, signalling the final page.
func encodeCursor(key Item) (string, error) {
	if len(key) == 0 {
		return "", nil
	}

	cur := pageCursor{Nonce: uuid.NewString(), Key: key}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cur); err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}

	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeCursor converts a client token back into an exclusive start key.
// An empty token yields a nil key, starting from the beginning.
func decodeCursor(cursor string) (Item, error) {
	if cursor == "" {
		return nil, nil
	}

	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var cur pageCursor
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&cur); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	return cur.Key, nil
}

package names

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLowerCamel(t *testing.T) {
	cases := map[string]string{
		"user_id":           "userId",
		"id":                "id",
		"ID":                "id",
		"Name":              "name",
		"UserID":            "userID",
		"first_name":        "firstName",
		"shipping_zip_code": "shippingZipCode",
		"":                  "",
		"__weird":           "Weird",
	}

	for in, want := range cases {
		require.Equal(t, want, LowerCamel(in), "input %q", in)
	}
}

func TestLowerCamelIdempotent(t *testing.T) {
	assert := require.New(t)

	once := LowerCamel("user_id")
	assert.Equal(once, LowerCamel(once))

	for _, in := range []string{"id", "ID", "UserID", "already_camel_cased"} {
		once := LowerCamel(in)
		assert.Equal(once, LowerCamel(once), "input %q", in)
	}
}

func TestPluralize(t *testing.T) {
	cases := map[string]string{
		"Category": "Categories",
		"Order":    "Orders",
		"Box":      "Boxes",
		"Dish":     "Dishes",
		"Address":  "Addresses",
		"Day":      "Days",
		"User":     "Users",
		"":         "",
	}

	for in, want := range cases {
		require.Equal(t, want, Pluralize(in), "input %q", in)
	}
}

// Package dynaorm provides a record-to-attribute mapping layer over the
// AWS SDK for Go v2 DynamoDB client.
//
// The library lets you declare plain Go structs as table records, mark their
// partition and sort keys with struct tags, and perform table creation, put,
// get, query and index-query operations without hand-building wire requests.
//
// # Key Concepts
//
// A record is any exported struct. Each exported field is classified into a
// semantic kind (boolean, number, string, timestamp, string set, nullable
// number, nested record list) and encoded into the matching DynamoDB
// attribute-value variant. Fields holding their zero value encode to nothing
// at all: the assembled item never carries empty or null attributes.
//
// Key fields are marked with tags:
//
//	type Order struct {
//	    ID     string `dynaorm:"partition"`
//	    Placed string `dynaorm:"sort"`
//	    Total  float64
//	    Tags   []string
//	}
//
// # Naming
//
// Table names derive from the record type name, optionally pluralized and
// lowerCamel-cased. A record can override derivation entirely by implementing
// TableNamer. Attribute names pass through the same configurable sanitizer,
// converting snake_case field names to lowerCamelCase when enabled.
//
// # Basic Usage
//
//	client, err := dynaorm.NewDefaultClient(ctx)
//	store := dynaorm.New(client,
//	    dynaorm.WithPluralizeTableNames(),
//	    dynaorm.WithCamelCaseFields(),
//	)
//
//	err = store.CreateTable(ctx, Order{}, "ID", "Placed")
//	err = store.Put(ctx, &Order{ID: "O1", Placed: "2024-01-01", Total: 10.50})
//
//	var order Order
//	err = store.Get(ctx, &order, "O1", "2024-01-01")
//
// # Querying
//
//	var orders []Order
//	next, err := store.Query(ctx, &orders, "O1",
//	    dynaorm.WithSortKeyBeginsWith("2024-"),
//	    dynaorm.WithQueryLimit(25),
//	)
//
// Query results include an opaque continuation cursor; pass it back with
// WithStartCursor to resume paging.
package dynaorm

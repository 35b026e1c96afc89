package sqlset

import (
	"context"
)

/*
Adapter is an interface providing the methods
needed to read a set from a database table.
*/
type Adapter interface {
	// Columns takes a table name and returns the names of its
	// columns in order.
	Columns(ctx context.Context, table string) ([]string, error)
	// IterateOnRows queries the given columns of every row in the
	// table ordered by the first of them and calls lambda with each
	// row index and values until it returns false or an error.
	IterateOnRows(ctx context.Context, table string, columns []string, lambda func(int, []string) (bool, error)) error
	// Close releases the database.
	Close() error
}

/*
WritableAdapter is an Adapter that can also create tables and add
rows to them.
*/
type WritableAdapter interface {
	Adapter
	// CreateTable ensures a table exists with an identifier column
	// generated by the database followed by a TEXT column for each
	// of the given names.
	CreateTable(ctx context.Context, table string, columns []string) error
	// AddRows inserts the given rows with values for the given
	// columns and returns the number of rows inserted.
	AddRows(ctx context.Context, table string, columns []string, rows [][]string) (int, error)
}

/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/saskaZs/decision-tree/set/sqlset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

const idColumnDef = `"id" SERIAL PRIMARY KEY`

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlset.WritableAdapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to PostgreSQL database: %v", err)
	}
	return &adapter{db}, nil
}

func (a *adapter) Columns(ctx context.Context, table string) ([]string, error) {
	return sqlset.ColumnNames(ctx, a.db, table)
}

func (a *adapter) IterateOnRows(ctx context.Context, table string, columns []string, lambda func(int, []string) (bool, error)) error {
	return sqlset.IterateOnRows(ctx, a.db, table, columns, lambda)
}

func (a *adapter) CreateTable(ctx context.Context, table string, columns []string) error {
	stmt, err := sqlset.CreateTableStmt(table, idColumnDef, columns)
	if err != nil {
		return err
	}
	_, err = a.db.ExecContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("ensuring table %s exists: %v", table, err)
	}
	return nil
}

func (a *adapter) AddRows(ctx context.Context, table string, columns []string, rows [][]string) (int, error) {
	return sqlset.InsertRows(ctx, a.db, table, columns, rows, func(i int) string { return fmt.Sprintf("$%d", i) })
}

func (a *adapter) Close() error {
	return a.db.Close()
}

/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/saskaZs/decision-tree/set"
	"github.com/saskaZs/decision-tree/set/sqlset"
)

const idColumnDef = `"id" INTEGER PRIMARY KEY AUTOINCREMENT`

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an existing SQLite3 database file and returns an
Adapter that works on the file's database or an error if it fails to
open as an sqlite3 database. If the file does not exist the returned
error wraps set.ErrSourceNotFound.
*/
func New(path string) (sqlset.WritableAdapter, error) {
	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("sqlite3 database %s: %w", path, set.ErrSourceNotFound)
		}
		return nil, fmt.Errorf("checking sqlite3 database %s: %v", path, err)
	}
	return open(path)
}

/*
Create takes a path to an SQLite3 database file and returns an Adapter
that works on the file's database, creating the file if it does not
exist.
*/
func Create(path string) (sqlset.WritableAdapter, error) {
	return open(path)
}

func open(path string) (sqlset.WritableAdapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
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
	return sqlset.InsertRows(ctx, a.db, table, columns, rows, func(int) string { return "?" })
}

func (a *adapter) Close() error {
	return a.db.Close()
}

package sqlset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// IDColumn is the name of the identifier column of tables created by
// adapters.
const IDColumn = "id"

/*
QuoteIdentifier takes a table or column name and returns it quoted for
use in a statement, or an error if it cannot be used as an identifier.
*/
func QuoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}

/*
ColumnNames takes a database and a table name and returns the names of
the table columns in order. It is meant to implement the Columns method
of adapters.
*/
func ColumnNames(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	qt, err := QuoteIdentifier(table)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", qt))
	if err != nil {
		return nil, fmt.Errorf("querying columns of table %s: %v", table, err)
	}
	defer rows.Close()
	return rows.Columns()
}

/*
IterateOnRows implements the IterateOnRows method of adapters for the
given database. NULL values are reported as errors.
*/
func IterateOnRows(ctx context.Context, db *sql.DB, table string, columns []string, lambda func(int, []string) (bool, error)) error {
	if len(columns) == 0 {
		return fmt.Errorf("no columns to query on table %s", table)
	}
	qt, err := QuoteIdentifier(table)
	if err != nil {
		return err
	}
	qcs, err := quoteAll(columns)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(qcs, ", "), qt, qcs[0])
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying rows of table %s: %v", table, err)
	}
	defer rows.Close()
	for j := 0; rows.Next(); j++ {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return fmt.Errorf("scanning row %d of table %s: %v", j+1, table, err)
		}
		record := make([]string, len(columns))
		for i, v := range values {
			if !v.Valid {
				return fmt.Errorf("row %d of table %s has no value for column %s", j+1, table, columns[i])
			}
			record[i] = v.String
		}
		ok, err := lambda(j, record)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

/*
CreateTableStmt takes a table name, the definition of its identifier
column and the names of the rest of its columns and returns a statement
creating the table if it does not exist.
*/
func CreateTableStmt(table, idColumnDef string, columns []string) (string, error) {
	var stmtBuf bytes.Buffer
	qt, err := QuoteIdentifier(table)
	if err != nil {
		return "", err
	}
	stmtBuf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s", qt, idColumnDef))
	for _, c := range columns {
		if c == IDColumn {
			return "", fmt.Errorf(`'%s' is reserved and cannot be used as column name`, c)
		}
		qc, err := QuoteIdentifier(c)
		if err != nil {
			return "", err
		}
		stmtBuf.WriteString(fmt.Sprintf(", %s TEXT NOT NULL", qc))
	}
	stmtBuf.WriteString(")")
	return stmtBuf.String(), nil
}

/*
InsertRows inserts the given rows in a single transaction using an
insert statement on the given table and columns, with placeholders
generated by the placeholder function from their 1-based position.
It returns the number of rows inserted.
*/
func InsertRows(ctx context.Context, db *sql.DB, table string, columns []string, rows [][]string, placeholder func(int) string) (int, error) {
	qt, err := QuoteIdentifier(table)
	if err != nil {
		return 0, err
	}
	qcs, err := quoteAll(columns)
	if err != nil {
		return 0, err
	}
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = placeholder(i + 1)
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", qt, strings.Join(qcs, ", "), strings.Join(placeholders, ", "))
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting insertion transaction: %v", err)
	}
	insertStmt, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing insert command: %v", err)
	}
	defer insertStmt.Close()
	for n, r := range rows {
		if len(r) != len(columns) {
			tx.Rollback()
			return 0, fmt.Errorf("row %d has %d values, expected %d", n+1, len(r), len(columns))
		}
		values := make([]interface{}, len(r))
		for i, v := range r {
			values[i] = v
		}
		_, err = insertStmt.ExecContext(ctx, values...)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting row %d: %v", n+1, err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("committing insertion transaction: %v", err)
	}
	return len(rows), nil
}

func quoteAll(names []string) ([]string, error) {
	result := make([]string, len(names))
	for i, n := range names {
		q, err := QuoteIdentifier(n)
		if err != nil {
			return nil, err
		}
		result[i] = q
	}
	return result, nil
}

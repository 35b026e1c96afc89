package sqlset

import (
	"context"
	"fmt"

	"github.com/saskaZs/decision-tree/dataset"
	"github.com/saskaZs/decision-tree/set"
)

/*
ReadSet takes a context, an Adapter and a table name and returns the
dataset stored on the table or an error. The first column of the table
is taken as the row identifier and left out of the dataset.
*/
func ReadSet(ctx context.Context, a Adapter, table string) (*dataset.Dataset, error) {
	columns, err := a.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s: %w", table, set.ErrEmptySource)
	}
	rows := []dataset.Row{}
	err = a.IterateOnRows(ctx, table, columns, func(_ int, record []string) (bool, error) {
		rows = append(rows, dataset.Row(set.DropIdentifier(record)))
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(dataset.Headers(set.DropIdentifier(columns)), rows), nil
}

/*
WriteSet takes a context, a WritableAdapter, a table name and a dataset
and stores the dataset rows on the table, creating it if needed.
*/
func WriteSet(ctx context.Context, a WritableAdapter, table string, d *dataset.Dataset) error {
	err := a.CreateTable(ctx, table, d.Headers)
	if err != nil {
		return err
	}
	rows := make([][]string, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = r
	}
	_, err = a.AddRows(ctx, table, d.Headers, rows)
	return err
}

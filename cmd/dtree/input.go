package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/saskaZs/decision-tree/dataset"
	"github.com/saskaZs/decision-tree/set/csv"
	"github.com/saskaZs/decision-tree/set/mongoset"
	"github.com/saskaZs/decision-tree/set/sqlset"
	"github.com/saskaZs/decision-tree/set/sqlset/pgadapter"
	"github.com/saskaZs/decision-tree/set/sqlset/sqlite3adapter"
	"github.com/spf13/cobra"
)

const defaultSetName = "samples"

const (
	csvSource      = "CSV"
	sqlite3Source  = "SQLite3"
	postgresSource = "PostgreSQL"
	mongoSource    = "MongoDB"
)

const sourceUsage = "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL"

type inputConfig struct {
	dataInput  string
	table      string
	collection string
}

func (ic *inputConfig) addFlags(cmd *cobra.Command, usage string) {
	cmd.PersistentFlags().StringVarP(&(ic.dataInput), "input", "i", "", usage)
	cmd.PersistentFlags().StringVar(&(ic.table), "table", defaultSetName, "table holding the set in SQLite3 and PostgreSQL databases")
	cmd.PersistentFlags().StringVar(&(ic.collection), "collection", defaultSetName, "collection holding the set in MongoDB databases")
}

func (ic *inputConfig) Validate() error {
	if ic.table == "" {
		return fmt.Errorf("table flag cannot be empty")
	}
	if ic.collection == "" {
		return fmt.Errorf("collection flag cannot be empty")
	}
	return nil
}

func sourceKind(location string) string {
	switch {
	case strings.HasPrefix(location, "postgresql://"), strings.HasPrefix(location, "postgres://"):
		return postgresSource
	case strings.HasPrefix(location, "mongodb://"):
		return mongoSource
	case strings.HasSuffix(location, ".db"):
		return sqlite3Source
	}
	return csvSource
}

func (rcc *rootCmdConfig) readSet(ctx context.Context, ic *inputConfig) (*dataset.Dataset, error) {
	switch sourceKind(ic.dataInput) {
	case postgresSource:
		rcc.Logf("Creating PostgreSQL adapter to read set from table %s...", ic.table)
		adapter, err := pgadapter.New(ic.dataInput)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqlset.ReadSet(ctx, adapter, ic.table)
	case sqlite3Source:
		rcc.Logf("Creating SQLite3 adapter for file %s to read set from table %s...", ic.dataInput, ic.table)
		adapter, err := sqlite3adapter.New(ic.dataInput)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqlset.ReadSet(ctx, adapter, ic.table)
	case mongoSource:
		rcc.Logf("Connecting to MongoDB to read set from collection %s...", ic.collection)
		session, err := mongoset.Dial(ic.dataInput)
		if err != nil {
			return nil, err
		}
		defer session.Close()
		return mongoset.ReadSet(ctx, session, ic.collection)
	}
	if ic.dataInput == "" {
		rcc.Logf("Reading set from STDIN...")
	} else {
		rcc.Logf("Opening %s to read set...", ic.dataInput)
	}
	return csv.ReadSetFromFilePath(ic.dataInput)
}

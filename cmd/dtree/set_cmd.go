package main

import (
	"context"
	"fmt"
	"os"

	"github.com/saskaZs/decision-tree/dataset"
	"github.com/saskaZs/decision-tree/set/csv"
	"github.com/saskaZs/decision-tree/set/mongoset"
	"github.com/saskaZs/decision-tree/set/sqlset"
	"github.com/saskaZs/decision-tree/set/sqlset/pgadapter"
	"github.com/saskaZs/decision-tree/set/sqlset/sqlite3adapter"
	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	inputConfig
	setOutput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy sets of data",
		Long:  `Read a set of data from any supported source and dump it into another one`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			d, err := config.readSet(cmd.Context(), &config.inputConfig)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			config.Logf("Read set with %d samples and columns %v", d.Count(), d.Headers)
			err = config.writeSet(cmd.Context(), cmd, d)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Done")
		},
	}
	config.addFlags(cmd, sourceUsage+" to read the set from (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", sourceUsage+" to dump the set into (defaults to STDOUT in CSV)")
	return cmd
}

func (scc *setCmdConfig) writeSet(ctx context.Context, cmd *cobra.Command, d *dataset.Dataset) error {
	switch sourceKind(scc.setOutput) {
	case postgresSource:
		scc.Logf("Creating PostgreSQL adapter to dump set into table %s...", scc.table)
		adapter, err := pgadapter.New(scc.setOutput)
		if err != nil {
			return err
		}
		defer adapter.Close()
		return sqlset.WriteSet(ctx, adapter, scc.table, d)
	case sqlite3Source:
		scc.Logf("Creating SQLite3 adapter for file %s to dump set into table %s...", scc.setOutput, scc.table)
		adapter, err := sqlite3adapter.Create(scc.setOutput)
		if err != nil {
			return err
		}
		defer adapter.Close()
		return sqlset.WriteSet(ctx, adapter, scc.table, d)
	case mongoSource:
		scc.Logf("Connecting to MongoDB to dump set into collection %s...", scc.collection)
		session, err := mongoset.Dial(scc.setOutput)
		if err != nil {
			return err
		}
		defer session.Close()
		return mongoset.WriteSet(ctx, session, scc.collection, d)
	}
	if scc.setOutput == "" {
		scc.Logf("Using STDOUT to dump set...")
		return csv.WriteSet(cmd.OutOrStdout(), d)
	}
	scc.Logf("Creating %s to dump set...", scc.setOutput)
	f, err := os.Create(scc.setOutput)
	if err != nil {
		return err
	}
	defer f.Close()
	return csv.WriteSet(f, d)
}

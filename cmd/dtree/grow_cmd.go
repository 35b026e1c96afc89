package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	decisiontree "github.com/saskaZs/decision-tree"
	"github.com/saskaZs/decision-tree/dataset"
	"github.com/saskaZs/decision-tree/feature"
	"github.com/saskaZs/decision-tree/tree"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	inputConfig
	rules bool
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a decision tree from a set of data to predict its last column and print it.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := config.grow(cmd.Context(), &config.inputConfig)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			out := cmd.OutOrStdout()
			if config.rules {
				err = writeRules(out, t)
			} else {
				_, err = fmt.Fprint(out, tree.String(t))
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	config.addFlags(cmd, sourceUsage+" with data to grow the tree from (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().BoolVarP(&(config.rules), "rules", "r", false, "print the tree as a list of rules, one per leaf")
	return cmd
}

/*
grow reads the set described by the input config, grows a tree from
it and logs how it went.
*/
func (rcc *rootCmdConfig) grow(ctx context.Context, ic *inputConfig) (tree.Tree, error) {
	d, err := rcc.readSet(ctx, ic)
	if err != nil {
		return nil, fmt.Errorf("reading training set: %v", err)
	}
	err = d.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid training set: %v", err)
	}
	rcc.Logf("Growing tree from a set with %d samples and %d features to predict %s ...", d.Count(), d.Width()-1, d.Headers.Target())
	for i, name := range d.Headers.Features() {
		rcc.Logf("Information gain of %s: %f", name, decisiontree.InformationGain(d.Rows, i))
	}
	t := decisiontree.Grow(d)
	rcc.Logf("Done: tree has depth %d and %d leaves", tree.Depth(t), tree.Leaves(t))
	rcc.Logf("Tree reproduces the label of %d out of %d training samples", reproduced(d, t), d.Count())
	return t, nil
}

func reproduced(d *dataset.Dataset, t tree.Tree) int {
	var count int
	for i, r := range d.Rows {
		if tree.Classify(d.Sample(i), t) == r.Label() {
			count++
		}
	}
	return count
}

func writeRules(w io.Writer, t tree.Tree) error {
	return tree.Traverse(t, func(path []feature.Criterion, n tree.Tree) error {
		leaf, ok := n.(tree.Leaf)
		if !ok {
			return nil
		}
		conditions := make([]string, len(path))
		for i, c := range path {
			conditions[i] = c.String()
		}
		var err error
		if len(conditions) == 0 {
			_, err = fmt.Fprintf(w, "ALWAYS %s\n", leaf)
		} else {
			_, err = fmt.Fprintf(w, "IF %s THEN %s\n", strings.Join(conditions, " AND "), leaf)
		}
		return err
	})
}

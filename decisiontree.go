/*
Package decisiontree grows decision trees with the ID3 algorithm from
categorical training data.

A tree is grown by selecting the feature with the highest information
gain, partitioning the training rows by its values and growing a subtree
from every partition with the remaining features, until partitions are
pure, run out of features or no feature provides any gain.
*/
package decisiontree

import (
	"github.com/saskaZs/decision-tree/dataset"
	"github.com/saskaZs/decision-tree/tree"
)

/*
Build takes a slice of rows and their headers and returns the tree grown
from them:
  * nil if there are no rows,
  * a leaf with the shared label if all rows have the same label,
  * a leaf with the majority label if the rows have no feature columns
    left or no feature provides any information gain,
  * a decision on the feature selected by BestSplit otherwise, with a
    subtree built from every group of rows sharing a value for it.

Majority ties go to the label seen first. Neither the rows nor the
headers are modified; subtrees are built from reduced copies.
*/
func Build(rows []dataset.Row, headers dataset.Headers) tree.Tree {
	if len(rows) == 0 {
		return nil
	}
	tally := dataset.NewTally(rows)
	if tally.Len() == 1 {
		return tree.Leaf(rows[0].Label())
	}
	if rows[0].Width() == 1 {
		return tree.Leaf(tally.Majority())
	}
	bestIndex, _ := BestSplit(rows)
	if bestIndex == NoSplit {
		return tree.Leaf(tally.Majority())
	}
	d := tree.NewDecision(headers[bestIndex])
	stHeaders := headers.Without(bestIndex)
	dataset.Split(rows, bestIndex).Each(func(value string, group []dataset.Row) {
		d.Branches.Add(value, Build(group, stHeaders))
	})
	return d
}

// Grow takes a dataset and returns the tree Build grows from its rows
// and headers.
func Grow(d *dataset.Dataset) tree.Tree {
	return Build(d.Rows, d.Headers)
}

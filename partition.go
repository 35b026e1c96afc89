package decisiontree

import (
	"github.com/saskaZs/decision-tree/dataset"
)

// NoSplit is the index BestSplit returns when no feature column provides
// a positive information gain.
const NoSplit = -1

// minGain is the smallest information gain taken as positive. Lower gains
// are rounding noise of a split that leaves the label distribution as is.
const minGain = 1e-12

/*
InformationGain takes a slice of rows and a feature column index and
returns the reduction in label entropy achieved by splitting the rows on
that column: the entropy of the rows minus the average entropy of the
resulting groups weighted by their share of rows. Gains below minGain
are returned as 0.0.
*/
func InformationGain(rows []dataset.Row, index int) float64 {
	var weightedEntropy float64
	totalCount := float64(len(rows))
	dataset.Split(rows, index).Each(func(_ string, group []dataset.Row) {
		weightedEntropy += float64(len(group)) / totalCount * dataset.Entropy(group)
	})
	informationGain := dataset.Entropy(rows) - weightedEntropy
	if informationGain < minGain {
		return 0.0
	}
	return informationGain
}

/*
BestSplit takes a slice of rows and returns the index of the feature
column with the highest information gain along with that gain.

Only a strictly greater gain replaces the current best, so among columns
with equal gain the one with the lowest index is selected. If there are
no rows, the rows have no feature columns, or no column has a positive
gain, NoSplit and 0.0 are returned.
*/
func BestSplit(rows []dataset.Row) (int, float64) {
	if len(rows) == 0 || rows[0].Width() <= 1 {
		return NoSplit, 0.0
	}
	bestIndex, bestGain := NoSplit, 0.0
	for i := 0; i < rows[0].Width()-1; i++ {
		gain := InformationGain(rows, i)
		if gain > bestGain && gain > minGain {
			bestIndex, bestGain = i, gain
		}
	}
	return bestIndex, bestGain
}

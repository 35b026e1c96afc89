package tree

import (
	"github.com/saskaZs/decision-tree/feature"
)

/*
Unknown is the label Classify returns for observations the tree has no
path for: a feature the tree asks about is missing from the observation
or its value was never seen in training.
*/
const Unknown = "Unknown"

/*
ValueFunc takes the name of a feature and the values a decision has
branches for and returns the value of an observation for the feature and
whether it has one at all, or an error if it cannot be obtained.
*/
type ValueFunc func(feature string, values []string) (string, bool, error)

/*
Classify takes an observation and a tree and returns the label predicted
by the tree for the observation. Starting from the root, it follows the
branch matching the observation's value for the feature of each decision
until it reaches a leaf, whose label it returns. If there is no matching
branch, or the tree is nil, Unknown is returned instead.
*/
func Classify(o feature.Observation, t Tree) string {
	label, _ := ClassifyFunc(t, func(name string, _ []string) (string, bool, error) {
		v, ok := o.ValueFor(name)
		return v, ok, nil
	})
	return label
}

/*
ClassifyFunc works like Classify but obtains the value for the feature of
every decision on the way from the given ValueFunc, so values are only
requested for the features the tree asks about. An error from the
ValueFunc aborts the classification and is returned along with Unknown.
*/
func ClassifyFunc(t Tree, valueFor ValueFunc) (string, error) {
	for {
		switch n := t.(type) {
		case Leaf:
			return string(n), nil
		case *Decision:
			v, ok, err := valueFor(n.Feature, n.Branches.Values())
			if err != nil {
				return Unknown, err
			}
			if !ok {
				return Unknown, nil
			}
			st, ok := n.Branches.Get(v)
			if !ok {
				return Unknown, nil
			}
			t = st
		default:
			return Unknown, nil
		}
	}
}

package tree

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
Tree is either a Leaf or a *Decision. A nil Tree is the absent tree
grown from no training data.
*/
type Tree interface {
	isTree()
}

// Leaf is a terminal node holding a predicted class label.
type Leaf string

/*
Decision is an internal node of the tree. It holds the feature to ask
about next and a subtree for every value of that feature seen in the
training data that reached the node.
*/
type Decision struct {
	// The feature observations are tested on at this node.
	Feature string
	// Subtrees keyed by value of Feature, in first-seen order.
	Branches *Branches
}

/*
Branches maps the values of a decision's feature to their subtrees,
keeping the order in which they were added.
*/
type Branches struct {
	m *linkedhashmap.Map
}

func (Leaf) isTree()      {}
func (*Decision) isTree() {}

// NewDecision returns a decision on the given feature with no branches.
func NewDecision(feature string) *Decision {
	return &Decision{Feature: feature, Branches: &Branches{linkedhashmap.New()}}
}

// Add sets the subtree for the given value.
func (b *Branches) Add(value string, t Tree) {
	b.m.Put(value, t)
}

// Get returns the subtree for the given value and whether there is one.
func (b *Branches) Get(value string) (Tree, bool) {
	t, ok := b.m.Get(value)
	if !ok {
		return nil, false
	}
	if t == nil {
		return nil, true
	}
	return t.(Tree), true
}

// Values returns the branch values in the order they were added.
func (b *Branches) Values() []string {
	keys := b.m.Keys()
	result := make([]string, len(keys))
	for i, k := range keys {
		result[i] = k.(string)
	}
	return result
}

// Len returns the number of branches.
func (b *Branches) Len() int {
	return b.m.Size()
}

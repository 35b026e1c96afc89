package tree

import (
	"fmt"
	"strings"

	"github.com/saskaZs/decision-tree/feature"
)

// Traverse takes a tree and an error-returning function that takes
// the path of criteria leading to a node and the node itself, and goes
// through the tree calling the function with every node, parents before
// their children and branches in order.
// The path slice is a fresh copy on every call. If the call to the
// function returns an error, the traversing is aborted and the error is
// returned. A nil tree is not traversed at all.
func Traverse(t Tree, f func(path []feature.Criterion, t Tree) error) error {
	if t == nil {
		return nil
	}
	return traverse(nil, t, f)
}

func traverse(path []feature.Criterion, t Tree, f func([]feature.Criterion, Tree) error) error {
	err := f(append([]feature.Criterion(nil), path...), t)
	if err != nil {
		return err
	}
	d, ok := t.(*Decision)
	if !ok {
		return nil
	}
	for _, v := range d.Branches.Values() {
		st, _ := d.Branches.Get(v)
		err = traverse(append(path, feature.Criterion{Feature: d.Feature, Value: v}), st, f)
		if err != nil {
			return err
		}
	}
	return nil
}

// Depth returns the number of decisions on the longest path from the
// root to a leaf.
func Depth(t Tree) int {
	var depth int
	Traverse(t, func(path []feature.Criterion, _ Tree) error {
		if len(path) > depth {
			depth = len(path)
		}
		return nil
	})
	return depth
}

// Leaves returns the number of leaves in the tree.
func Leaves(t Tree) int {
	var count int
	Traverse(t, func(_ []feature.Criterion, n Tree) error {
		if _, ok := n.(Leaf); ok {
			count++
		}
		return nil
	})
	return count
}

// String renders the tree with a line per node, decisions showing
// their feature in brackets and branches hanging from them.
func String(t Tree) string {
	if t == nil {
		return "<empty tree>\n"
	}
	return subtreeString(t)
}

func (d *Decision) String() string {
	return String(d)
}

func subtreeString(t Tree) string {
	switch n := t.(type) {
	case Leaf:
		return fmt.Sprintf("%s\n", string(n))
	case *Decision:
		result := fmt.Sprintf("[%s]\n", n.Feature)
		values := n.Branches.Values()
		for i, v := range values {
			result = fmt.Sprintf("%s|__%s\n", result, v)
			indent := "|  "
			if i == len(values)-1 {
				indent = "   "
			}
			st, _ := n.Branches.Get(v)
			for _, line := range strings.Split(String(st), "\n") {
				if len(line) > 0 {
					result = fmt.Sprintf("%s%s%s\n", result, indent, line)
				}
			}
		}
		return result
	}
	return ""
}

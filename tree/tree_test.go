package tree

import (
	"errors"
	"reflect"
	"testing"

	"github.com/saskaZs/decision-tree/feature"
)

func TestString(t *testing.T) {
	expected := `[outlook]
|__Sunny
|  [humidity]
|  |__High
|  |  No
|  |__Normal
|     Yes
|__Overcast
   Yes
`
	if s := String(weatherTree()); s != expected {
		t.Fatalf("expected\n%s\ngot\n%s", expected, s)
	}
	if s := String(Leaf("Yes")); s != "Yes\n" {
		t.Fatalf("expected Yes, got %q", s)
	}
	if s := String(nil); s != "<empty tree>\n" {
		t.Fatalf("expected empty tree, got %q", s)
	}
}

func TestTraverse(t *testing.T) {
	var visited []string
	var paths [][]feature.Criterion
	err := Traverse(weatherTree(), func(path []feature.Criterion, n Tree) error {
		switch node := n.(type) {
		case Leaf:
			visited = append(visited, string(node))
		case *Decision:
			visited = append(visited, node.Feature)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"outlook", "humidity", "No", "Yes", "Yes"}
	if !reflect.DeepEqual(visited, expected) {
		t.Fatalf("expected nodes %v, got %v", expected, visited)
	}
	expectedPath := []feature.Criterion{{Feature: "outlook", Value: "Sunny"}, {Feature: "humidity", Value: "Normal"}}
	if !reflect.DeepEqual(paths[3], expectedPath) {
		t.Fatalf("expected path %v, got %v", expectedPath, paths[3])
	}
	if len(paths[0]) != 0 {
		t.Fatalf("expected empty path for the root, got %v", paths[0])
	}
}

func TestTraverseAborts(t *testing.T) {
	stop := errors.New("stop")
	var count int
	err := Traverse(weatherTree(), func(_ []feature.Criterion, n Tree) error {
		count++
		if _, ok := n.(Leaf); ok {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Fatalf("expected the function error, got %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 visited nodes, got %d", count)
	}
}

func TestDepthAndLeaves(t *testing.T) {
	testCases := []struct {
		name           string
		tree           Tree
		expectedDepth  int
		expectedLeaves int
	}{
		{"nil", nil, 0, 0},
		{"leaf", Leaf("Yes"), 0, 1},
		{"weather", weatherTree(), 2, 3},
	}
	for _, tc := range testCases {
		if d := Depth(tc.tree); d != tc.expectedDepth {
			t.Errorf("expected depth %d for %s, got %d", tc.expectedDepth, tc.name, d)
		}
		if l := Leaves(tc.tree); l != tc.expectedLeaves {
			t.Errorf("expected %d leaves for %s, got %d", tc.expectedLeaves, tc.name, l)
		}
	}
}

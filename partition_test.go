package decisiontree

import (
	"math"
	"testing"

	"github.com/saskaZs/decision-tree/dataset"
)

const tolerance = 1e-9

func TestInformationGain(t *testing.T) {
	d := readPlayTennis(t)
	expected := []float64{
		0.24674981977443933,
		0.02922256565895487,
		0.15183550136234159,
		0.04812703040826949,
	}
	for i, e := range expected {
		got := InformationGain(d.Rows, i)
		if math.Abs(got-e) > tolerance {
			t.Errorf("expected gain %v for %s, got %v", e, d.Headers[i], got)
		}
	}
}

// evenGroupRows returns rows whose groups for the single feature column
// all have the label distribution of the whole set.
func evenGroupRows() []dataset.Row {
	var rows []dataset.Row
	for _, g := range []string{"0", "1", "2", "3"} {
		for i := 0; i < 3; i++ {
			for _, label := range []string{"A", "B", "C", "D", "E"} {
				rows = append(rows, dataset.Row{g, label})
			}
		}
	}
	return rows
}

func TestInformationGainWithoutImprovement(t *testing.T) {
	if gain := InformationGain(evenGroupRows(), 0); gain != 0.0 {
		t.Fatalf("expected gain 0 for groups copying the label distribution, got %v", gain)
	}
	if gain := InformationGain(nil, 0); gain != 0.0 {
		t.Fatalf("expected gain 0 for no rows, got %v", gain)
	}
}

func TestBestSplit(t *testing.T) {
	testCases := []struct {
		name          string
		rows          []dataset.Row
		expectedIndex int
		expectedGain  float64
	}{
		{
			name:          "no rows",
			rows:          nil,
			expectedIndex: NoSplit,
			expectedGain:  0.0,
		},
		{
			name:          "labels only",
			rows:          []dataset.Row{{"Yes"}, {"No"}},
			expectedIndex: NoSplit,
			expectedGain:  0.0,
		},
		{
			name:          "no gain",
			rows:          []dataset.Row{{"x", "Y"}, {"x", "N"}},
			expectedIndex: NoSplit,
			expectedGain:  0.0,
		},
		{
			name:          "groups copying the label distribution",
			rows:          evenGroupRows(),
			expectedIndex: NoSplit,
			expectedGain:  0.0,
		},
		{
			name:          "tie goes to the lowest index",
			rows:          []dataset.Row{{"a", "x", "Y"}, {"b", "y", "N"}},
			expectedIndex: 0,
			expectedGain:  1.0,
		},
		{
			name:          "second column",
			rows:          []dataset.Row{{"a", "x", "Y"}, {"a", "y", "N"}},
			expectedIndex: 1,
			expectedGain:  1.0,
		},
		{
			name: "weather",
			rows: []dataset.Row{
				{"Sunny", "Hot", "High", "Weak", "No"},
				{"Overcast", "Hot", "High", "Weak", "Yes"},
				{"Rain", "Cool", "Normal", "Weak", "Yes"},
				{"Sunny", "Cool", "Normal", "Strong", "No"},
			},
			expectedIndex: 0,
			expectedGain:  1.0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			index, gain := BestSplit(tc.rows)
			if index != tc.expectedIndex {
				t.Errorf("expected index %d, got %d", tc.expectedIndex, index)
			}
			if math.Abs(gain-tc.expectedGain) > tolerance {
				t.Errorf("expected gain %v, got %v", tc.expectedGain, gain)
			}
		})
	}
}

func TestBestSplitPlayTennis(t *testing.T) {
	d := readPlayTennis(t)
	index, gain := BestSplit(d.Rows)
	if index != 0 {
		t.Fatalf("expected outlook (0) to be the best split, got %d", index)
	}
	if math.Abs(gain-0.24674981977443933) > tolerance {
		t.Fatalf("expected gain 0.2467..., got %v", gain)
	}
}
